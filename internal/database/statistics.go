package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kongenga_back_end/internal/models"
)

// StatsDocID : _id fixe du document singleton de statistiques.
const StatsDocID = "platform_stats"

// MonthStart retourne le premier jour du mois de t à minuit UTC,
// borne utilisée pour compter les utilisateurs actifs du mois.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// UpdatePlatformStatistics recalcule les statistiques globales par
// scan complet et upsert le document singleton. Déclenché de façon
// synchrone sur les écritures principales — aucune atomicité entre
// l'écriture et le recalcul, la fenêtre d'incohérence est acceptée.
func (db *DB) UpdatePlatformStatistics(ctx context.Context) error {
	totalJobs, err := db.Jobs().CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return err
	}
	totalStudents, err := db.Users().CountDocuments(ctx, bson.M{"role": models.RoleStudent})
	if err != nil {
		return err
	}
	totalCompanies, err := db.Companies().CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return err
	}
	successStories, err := db.Testimonials().CountDocuments(ctx, bson.M{"isApproved": true})
	if err != nil {
		return err
	}
	activeUsers, err := db.Users().CountDocuments(ctx, bson.M{
		"lastActive": bson.M{"$gte": MonthStart(time.Now())},
	})
	if err != nil {
		return err
	}

	// Nombre de métiers actifs par secteur, via la clé étrangère
	// sectorId.
	cursor, err := db.Sectors().Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return err
	}
	var sectors []models.Sector
	if err := cursor.All(ctx, &sectors); err != nil {
		return err
	}
	for _, sector := range sectors {
		jobCount, err := db.Jobs().CountDocuments(ctx, bson.M{
			"sectorId": sector.ID,
			"isActive": true,
		})
		if err != nil {
			return err
		}
		if _, err := db.Sectors().UpdateOne(ctx,
			bson.M{"id": sector.ID},
			bson.M{"$set": bson.M{"jobCount": jobCount}},
		); err != nil {
			return err
		}
	}

	stats := models.PlatformStatistics{
		TotalJobs:      int(totalJobs),
		TotalStudents:  int(totalStudents),
		TotalCompanies: int(totalCompanies),
		SuccessStories: int(successStories),
		ActiveUsers:    int(activeUsers),
		LastUpdated:    time.Now().UTC(),
	}

	_, err = db.Statistics().ReplaceOne(ctx,
		bson.M{"_id": StatsDocID},
		bson.M{
			"_id":            StatsDocID,
			"totalJobs":      stats.TotalJobs,
			"totalStudents":  stats.TotalStudents,
			"totalCompanies": stats.TotalCompanies,
			"successStories": stats.SuccessStories,
			"activeUsers":    stats.ActiveUsers,
			"lastUpdated":    stats.LastUpdated,
		},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	log.Println("📊 Statistiques de la plateforme mises à jour")
	return nil
}
