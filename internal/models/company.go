package models

import "time"

type Company struct {
	ID           string           `json:"id" bson:"id"`
	Name         string           `json:"name" bson:"name"`
	Description  MultilingualText `json:"description" bson:"description"`
	Logo         string           `json:"logo,omitempty" bson:"logo,omitempty"`
	Website      *ExternalLink    `json:"website,omitempty" bson:"website,omitempty"`
	Location     string           `json:"location" bson:"location"`
	SectorID     string           `json:"sectorId" bson:"sectorId"`
	Size         string           `json:"size,omitempty" bson:"size,omitempty"`
	ContactEmail string           `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone string           `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	IsActive     bool             `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}

type CompanyCreate struct {
	Name         string           `json:"name" binding:"required"`
	Description  MultilingualText `json:"description" binding:"required"`
	Logo         string           `json:"logo"`
	Website      *ExternalLink    `json:"website"`
	Location     string           `json:"location" binding:"required"`
	SectorID     string           `json:"sectorId" binding:"required"`
	Size         string           `json:"size" binding:"omitempty,oneof=1-10 11-50 51-200 200+"`
	ContactEmail string           `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string           `json:"contactPhone"`
}
