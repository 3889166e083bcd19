package models

import "time"

// Sector : jobCount est dérivé (recalculé à la lecture et lors des
// mises à jour de statistiques), jamais autoritaire en base.
type Sector struct {
	ID              string           `json:"id" bson:"id"`
	Name            MultilingualText `json:"name" bson:"name"`
	Description     MultilingualText `json:"description" bson:"description"`
	Icon            string           `json:"icon" bson:"icon"`
	Color           string           `json:"color" bson:"color"`
	JobCount        int              `json:"jobCount" bson:"jobCount"`
	Growth          string           `json:"growth" bson:"growth"`
	BackgroundImage string           `json:"backgroundImage,omitempty" bson:"backgroundImage,omitempty"`
	IsActive        bool             `json:"isActive" bson:"isActive"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
}

type SectorCreate struct {
	Name            MultilingualText `json:"name" binding:"required"`
	Description     MultilingualText `json:"description" binding:"required"`
	Icon            string           `json:"icon" binding:"required"`
	Color           string           `json:"color" binding:"required"`
	Growth          string           `json:"growth" binding:"required"`
	BackgroundImage string           `json:"backgroundImage"`
}
