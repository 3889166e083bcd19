package models

import "time"

type Training struct {
	ID            string           `json:"id" bson:"id"`
	Name          MultilingualText `json:"name" bson:"name"`
	Provider      string           `json:"provider" bson:"provider"`
	Description   MultilingualText `json:"description" bson:"description"`
	Duration      string           `json:"duration" bson:"duration"`
	Cost          string           `json:"cost" bson:"cost"`
	Level         string           `json:"level" bson:"level"`
	Language      string           `json:"language" bson:"language"`
	Format        string           `json:"format" bson:"format"`
	ExternalLink  ExternalLink     `json:"externalLink" bson:"externalLink"`
	Skills        []string         `json:"skills" bson:"skills"`
	Prerequisites []string         `json:"prerequisites" bson:"prerequisites"`
	Certificate   bool             `json:"certificate" bson:"certificate"`
	IsActive      bool             `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
}

type TrainingCreate struct {
	Name          MultilingualText `json:"name" binding:"required"`
	Provider      string           `json:"provider" binding:"required"`
	Description   MultilingualText `json:"description" binding:"required"`
	Duration      string           `json:"duration" binding:"required"`
	Cost          string           `json:"cost" binding:"required"`
	Level         string           `json:"level" binding:"required"`
	Language      string           `json:"language" binding:"required"`
	Format        string           `json:"format" binding:"required"`
	ExternalLink  ExternalLink     `json:"externalLink" binding:"required"`
	Skills        []string         `json:"skills"`
	Prerequisites []string         `json:"prerequisites"`
	Certificate   bool             `json:"certificate"`
}
