package models

import "time"

// Testimonial n'est visible publiquement qu'une fois approuvé par un
// administrateur (isApproved). isVerified atteste de l'authenticité.
type Testimonial struct {
	ID         string           `json:"id" bson:"id"`
	Name       string           `json:"name" bson:"name"`
	Position   string           `json:"position" bson:"position"`
	Company    string           `json:"company" bson:"company"`
	Quote      MultilingualText `json:"quote" bson:"quote"`
	Image      string           `json:"image,omitempty" bson:"image,omitempty"`
	LinkedIn   string           `json:"linkedIn,omitempty" bson:"linkedIn,omitempty"`
	IsVerified bool             `json:"isVerified" bson:"isVerified"`
	IsApproved bool             `json:"isApproved" bson:"isApproved"`
	JobID      string           `json:"jobId" bson:"jobId"`
	CreatedAt  time.Time        `json:"createdAt" bson:"createdAt"`
}

type TestimonialCreate struct {
	Name     string           `json:"name" binding:"required"`
	Position string           `json:"position" binding:"required"`
	Company  string           `json:"company" binding:"required"`
	Quote    MultilingualText `json:"quote" binding:"required"`
	Image    string           `json:"image"`
	LinkedIn string           `json:"linkedIn"`
	JobID    string           `json:"jobId" binding:"required"`
}
