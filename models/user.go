package models

import (
	"time"
)

// User is the account shared by clients and sitters.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	UserType     string    `bson:"userType" json:"userType"` // "client" or "sitter"
	Neighborhood string    `bson:"neighborhood" json:"neighborhood"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Client is a dog owner together with the dogs registered on the account.
type Client struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	UserType     string    `bson:"userType" json:"userType"`
	Neighborhood string    `bson:"neighborhood" json:"neighborhood"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	Dogs         []Dog     `bson:"dogs" json:"dogs"`
}

type Dog struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Breed          string `bson:"breed" json:"breed"`
	Age            int    `bson:"age" json:"age"` // years
	Size           string `bson:"size" json:"size"`
	Temperament    string `bson:"temperament" json:"temperament"` // "calm", "energetic" or "mixed"
	Image          string `bson:"image" json:"image"`
	AdditionalInfo string `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	Allergies      string `bson:"allergies,omitempty" json:"allergies,omitempty"`
	SpecialNeeds   string `bson:"specialNeeds,omitempty" json:"specialNeeds,omitempty"`
}

type Review struct {
	ID         string    `bson:"id" json:"id"`
	Rating     float64   `bson:"rating" json:"rating"` // 1-5
	Comment    string    `bson:"comment" json:"comment"`
	ClientName string    `bson:"clientName" json:"clientName"`
	Date       time.Time `bson:"date" json:"date"`
}

// CurrentUser is the authenticated identity attached to a request, used by
// the feed pipelines to pin the caller's own entries.
type CurrentUser struct {
	ID       string `json:"id"`
	UserType string `json:"userType"`
}
