package models

import "time"

// Job référence entreprises, formations et témoignages par listes
// d'IDs ; elles sont résolues à la lecture. Le secteur est une vraie
// clé étrangère vers Sector.ID.
type Job struct {
	ID               string           `json:"id" bson:"id"`
	Title            MultilingualText `json:"title" bson:"title"`
	SectorID         string           `json:"sectorId" bson:"sectorId"`
	Description      MultilingualText `json:"description" bson:"description"`
	Education        []string         `json:"education" bson:"education"`
	SalaryRange      string           `json:"salaryRange" bson:"salaryRange"`
	HiringRate       string           `json:"hiringRate" bson:"hiringRate"`
	GrowthProjection string           `json:"growthProjection" bson:"growthProjection"`
	Companies        []string         `json:"companies" bson:"companies"`
	Skills           []string         `json:"skills" bson:"skills"`
	Training         []string         `json:"training" bson:"training"`
	Testimonials     []string         `json:"testimonials" bson:"testimonials"`
	Requirements     MultilingualText `json:"requirements" bson:"requirements"`
	Benefits         MultilingualText `json:"benefits" bson:"benefits"`
	WorkEnvironment  MultilingualText `json:"workEnvironment" bson:"workEnvironment"`
	CareerPath       MultilingualText `json:"careerPath" bson:"careerPath"`
	IsActive         bool             `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type JobCreate struct {
	Title            MultilingualText `json:"title" binding:"required"`
	SectorID         string           `json:"sectorId" binding:"required"`
	Description      MultilingualText `json:"description" binding:"required"`
	Education        []string         `json:"education"`
	SalaryRange      string           `json:"salaryRange" binding:"required"`
	HiringRate       string           `json:"hiringRate" binding:"required"`
	GrowthProjection string           `json:"growthProjection" binding:"required"`
	Companies        []string         `json:"companies"`
	Skills           []string         `json:"skills"`
	Training         []string         `json:"training"`
	Testimonials     []string         `json:"testimonials"`
	Requirements     MultilingualText `json:"requirements" binding:"required"`
	Benefits         MultilingualText `json:"benefits" binding:"required"`
	WorkEnvironment  MultilingualText `json:"workEnvironment" binding:"required"`
	CareerPath       MultilingualText `json:"careerPath" binding:"required"`
}

// JobUpdate : PUT partiel, seuls les champs non nil sont appliqués.
type JobUpdate struct {
	Title            *MultilingualText `json:"title"`
	SectorID         *string           `json:"sectorId"`
	Description      *MultilingualText `json:"description"`
	Education        *[]string         `json:"education"`
	SalaryRange      *string           `json:"salaryRange"`
	HiringRate       *string           `json:"hiringRate"`
	GrowthProjection *string           `json:"growthProjection"`
	Companies        *[]string         `json:"companies"`
	Skills           *[]string         `json:"skills"`
	Training         *[]string         `json:"training"`
	Testimonials     *[]string         `json:"testimonials"`
	Requirements     *MultilingualText `json:"requirements"`
	Benefits         *MultilingualText `json:"benefits"`
	WorkEnvironment  *MultilingualText `json:"workEnvironment"`
	CareerPath       *MultilingualText `json:"careerPath"`
	IsActive         *bool             `json:"isActive"`
}

// JobResponse : le métier avec toutes ses références résolues.
type JobResponse struct {
	ID               string           `json:"id"`
	Title            MultilingualText `json:"title"`
	SectorID         string           `json:"sectorId"`
	Sector           *Sector          `json:"sector,omitempty"`
	Description      MultilingualText `json:"description"`
	Education        []string         `json:"education"`
	SalaryRange      string           `json:"salaryRange"`
	HiringRate       string           `json:"hiringRate"`
	GrowthProjection string           `json:"growthProjection"`
	Companies        []Company        `json:"companies"`
	Skills           []string         `json:"skills"`
	Training         []Training       `json:"training"`
	Testimonials     []Testimonial    `json:"testimonials"`
	Requirements     MultilingualText `json:"requirements"`
	Benefits         MultilingualText `json:"benefits"`
	WorkEnvironment  MultilingualText `json:"workEnvironment"`
	CareerPath       MultilingualText `json:"careerPath"`
	IsActive         bool             `json:"isActive"`
	CreatedAt        time.Time        `json:"createdAt"`
}
