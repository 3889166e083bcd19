package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"kongenga_back_end/internal/config"
)

// DB est le handle explicite vers les bases de données. Il est
// construit au démarrage, injecté dans les handlers, et fermé par
// main à l'arrêt — pas de singleton global.
type DB struct {
	Client *mongo.Client
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// Connect ouvre MongoDB et Redis et vérifie les deux connexions.
func Connect(ctx context.Context, cfg config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	log.Println("✅ Connecté à MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}
	log.Println("✅ Connecté à Redis")

	return &DB{
		Client: client,
		Mongo:  client.Database(cfg.DBName),
		Redis:  rdb,
	}, nil
}

// Close ferme proprement les connexions, appelé par main à l'arrêt.
func (db *DB) Close(ctx context.Context) {
	if err := db.Redis.Close(); err != nil {
		log.Printf("⚠️  Fermeture Redis: %v", err)
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("⚠️  Déconnexion MongoDB: %v", err)
	} else {
		log.Println("🔌 Déconnecté de MongoDB")
	}
}

// --- Accès aux collections ---

func (db *DB) Users() *mongo.Collection        { return db.Mongo.Collection("users") }
func (db *DB) Jobs() *mongo.Collection         { return db.Mongo.Collection("jobs") }
func (db *DB) Companies() *mongo.Collection    { return db.Mongo.Collection("companies") }
func (db *DB) Training() *mongo.Collection     { return db.Mongo.Collection("training") }
func (db *DB) Testimonials() *mongo.Collection { return db.Mongo.Collection("testimonials") }
func (db *DB) Sectors() *mongo.Collection      { return db.Mongo.Collection("sectors") }
func (db *DB) Statistics() *mongo.Collection   { return db.Mongo.Collection("statistics") }
