package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crée les index au démarrage. L'unicité des emails est
// garantie par l'index unique sur users.email.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "lastActive", Value: -1}}},
	}
	jobs := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sectorId", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "companies", Value: 1}}},
	}
	companies := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "sectorId", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}
	training := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider", Value: 1}}},
		{Keys: bson.D{{Key: "level", Value: 1}}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}
	testimonials := []mongo.IndexModel{
		{Keys: bson.D{{Key: "jobId", Value: 1}}},
		{Keys: bson.D{{Key: "isApproved", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	sectors := []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	for coll, models := range map[string][]mongo.IndexModel{
		"users":        users,
		"jobs":         jobs,
		"companies":    companies,
		"training":     training,
		"testimonials": testimonials,
		"sectors":      sectors,
	} {
		if _, err := db.Mongo.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("index %s: %w", coll, err)
		}
	}

	log.Println("✅ Index MongoDB créés")
	return nil
}
