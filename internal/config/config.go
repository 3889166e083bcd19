package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration chargée au démarrage.
// L'administrateur bootstrap n'est activé que si ADMIN_EMAIL et
// ADMIN_PASSWORD sont renseignés — rien n'est codé en dur.
type Config struct {
	Port          string
	MongoURL      string
	DBName        string
	JWTSecret     string
	RedisHost     string
	RedisPassword string
	AdminEmail    string
	AdminPassword string
	SeedData      bool
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		MongoURL:      os.Getenv("MONGO_URL"),
		DBName:        getenv("DB_NAME", "kongenga"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SeedData:      os.Getenv("SEED_SAMPLE_DATA") == "true",
	}

	if missing := cfg.MissingVars(); len(missing) > 0 {
		log.Fatalf("❌ Variables d'environnement manquantes: %s", strings.Join(missing, ", "))
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL/ADMIN_PASSWORD non configurés — bootstrap administrateur désactivé")
	}

	return cfg
}

// MissingVars liste les variables obligatoires non renseignées,
// qu'elles viennent d'un fichier .env ou de l'environnement système.
func (c Config) MissingVars() []string {
	var missing []string
	if c.MongoURL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	return missing
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
