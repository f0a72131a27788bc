package models

import (
	"time"
)

// Sitter is a pet-sitter profile advertised on the sitters feed.
type Sitter struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Phone         string         `bson:"phone" json:"phone"`
	ProfileImage  string         `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	UserType      string         `bson:"userType" json:"userType"` // always "sitter"
	Neighborhood  string         `bson:"neighborhood" json:"neighborhood"`
	Description   string         `bson:"description" json:"description"`
	Experience    string         `bson:"experience" json:"experience"` // one of ExperienceLevels
	Neighborhoods []string       `bson:"neighborhoods" json:"neighborhoods"`
	Services      []SitterService `bson:"services" json:"services"`
	Availability  []Availability `bson:"availability,omitempty" json:"availability,omitempty"`
	Rating        float64        `bson:"rating" json:"rating"` // 0-5
	ReviewCount   int            `bson:"reviewCount" json:"reviewCount"`
	Verified      bool           `bson:"verified" json:"verified"`
	Password      string         `bson:"-" json:"password,omitempty"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
}

// SitterService is a single priced service a sitter offers.
type SitterService struct {
	ID    string  `bson:"id" json:"id"`
	Type  string  `bson:"type" json:"type"` // "walk_30", "walk_60" or "home_visit"
	Price float64 `bson:"price" json:"price"`
}

// Availability is a weekly recurring slot. Times are "HH:MM".
type Availability struct {
	Day       string `bson:"day" json:"day"` // Hebrew weekday name
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}
