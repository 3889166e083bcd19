package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/models"
)

// ================== AGRÉGATION ==================
//
// resolveJobRefs assemble la réponse complète d'un métier : chaque
// liste d'IDs non vide déclenche une recherche $in ; les témoignages
// sont en plus filtrés sur isApproved. Les références pendantes sont
// silencieusement ignorées — le tableau résultat peut être plus court
// que la liste d'IDs, jamais une erreur. Une liste vide ne déclenche
// aucune requête. Routine unique, partagée entre les endpoints
// métiers et la résolution des favoris.

func resolveJobRefs(ctx context.Context, db *database.DB, job models.Job) (models.JobResponse, error) {
	resp := models.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		SectorID:         job.SectorID,
		Description:      job.Description,
		Education:        orEmpty(job.Education),
		SalaryRange:      job.SalaryRange,
		HiringRate:       job.HiringRate,
		GrowthProjection: job.GrowthProjection,
		Companies:        []models.Company{},
		Skills:           orEmpty(job.Skills),
		Training:         []models.Training{},
		Testimonials:     []models.Testimonial{},
		Requirements:     job.Requirements,
		Benefits:         job.Benefits,
		WorkEnvironment:  job.WorkEnvironment,
		CareerPath:       job.CareerPath,
		IsActive:         job.IsActive,
		CreatedAt:        job.CreatedAt,
	}

	if job.SectorID != "" {
		var sector models.Sector
		err := db.Sectors().FindOne(ctx, bson.M{"id": job.SectorID}).Decode(&sector)
		if err == nil {
			resp.Sector = &sector
		} else if err != mongo.ErrNoDocuments {
			return resp, err
		}
	}

	if len(job.Companies) > 0 {
		cursor, err := db.Companies().Find(ctx, bson.M{"id": bson.M{"$in": job.Companies}})
		if err != nil {
			return resp, err
		}
		if err := cursor.All(ctx, &resp.Companies); err != nil {
			return resp, err
		}
	}

	if len(job.Training) > 0 {
		cursor, err := db.Training().Find(ctx, bson.M{"id": bson.M{"$in": job.Training}})
		if err != nil {
			return resp, err
		}
		if err := cursor.All(ctx, &resp.Training); err != nil {
			return resp, err
		}
	}

	if len(job.Testimonials) > 0 {
		cursor, err := db.Testimonials().Find(ctx, bson.M{
			"id":         bson.M{"$in": job.Testimonials},
			"isApproved": true,
		})
		if err != nil {
			return resp, err
		}
		if err := cursor.All(ctx, &resp.Testimonials); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// resolveJobs résout une liste de métiers en réponses complètes.
func resolveJobs(ctx context.Context, db *database.DB, jobs []models.Job) ([]models.JobResponse, error) {
	responses := make([]models.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp, err := resolveJobRefs(ctx, db, job)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
