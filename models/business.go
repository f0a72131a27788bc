package models

import (
	"time"
)

// Business is a storefront listed on the businesses feed.
type Business struct {
	ID           string            `bson:"id" json:"id"`
	Name         string            `bson:"name" json:"name"`
	Category     string            `bson:"category" json:"category"` // one of BusinessCategories
	Description  string            `bson:"description" json:"description"`
	Image        string            `bson:"image" json:"image"`
	Gallery      []string          `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Address      string            `bson:"address" json:"address"`
	Neighborhood string            `bson:"neighborhood" json:"neighborhood"`
	Phone        string            `bson:"phone" json:"phone"`
	Email        string            `bson:"email,omitempty" json:"email,omitempty"`
	Website      string            `bson:"website,omitempty" json:"website,omitempty"`
	Rating       float64           `bson:"rating" json:"rating"`
	ReviewCount  int               `bson:"reviewCount" json:"reviewCount"`
	Services     []BusinessService `bson:"services" json:"services"`
	OpeningHours []OpeningHours    `bson:"openingHours" json:"openingHours"`
	Verified     bool              `bson:"verified" json:"verified"`
	SpecialOffer string            `bson:"specialOffer,omitempty" json:"specialOffer,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
}

// BusinessService is a priced service or product a business offers.
type BusinessService struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Duration    string  `bson:"duration,omitempty" json:"duration,omitempty"`
}

// OpeningHours describes a single weekday. Times are "HH:MM" and are only
// meaningful when IsOpen is true.
type OpeningHours struct {
	Day       string `bson:"day" json:"day"` // Hebrew weekday name
	IsOpen    bool   `bson:"isOpen" json:"isOpen"`
	OpenTime  string `bson:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime string `bson:"closeTime,omitempty" json:"closeTime,omitempty"`
}
