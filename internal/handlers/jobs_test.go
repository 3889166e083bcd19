package handlers_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kongenga_back_end/internal/handlers"
	"kongenga_back_end/internal/models"
)

func TestJobListFilterDefault(t *testing.T) {
	filter := handlers.JobListFilter("", "", models.LangFrench)
	if len(filter) != 1 {
		t.Fatalf("filtre par défaut = %v, veut seulement isActive", filter)
	}
	if filter["isActive"] != true {
		t.Error("le listing ne doit renvoyer que les métiers actifs")
	}
}

func TestJobListFilterSector(t *testing.T) {
	filter := handlers.JobListFilter("technology", "", models.LangFrench)
	if filter["sectorId"] != "technology" {
		t.Errorf("sectorId = %v, want technology", filter["sectorId"])
	}
}

func TestJobListFilterSearchLanguage(t *testing.T) {
	filter := handlers.JobListFilter("", "python", models.LangSwahili)

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("$or manquant dans %v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("$or doit couvrir titre, description et compétences, got %d clauses", len(or))
	}

	first, ok := or[0].(bson.M)
	if !ok {
		t.Fatalf("clause inattendue: %T", or[0])
	}
	regex, ok := first["title.sw"].(primitive.Regex)
	if !ok {
		t.Fatalf("la recherche doit cibler title.sw, got %v", first)
	}
	if regex.Pattern != "python" || regex.Options != "i" {
		t.Errorf("regex = %+v, veut python insensible à la casse", regex)
	}
}

func TestJobUpdateSetPartial(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	salary := "800-1500 USD"
	active := false

	set := handlers.JobUpdateSet(models.JobUpdate{
		SalaryRange: &salary,
		IsActive:    &active,
	}, now)

	if len(set) != 3 {
		t.Fatalf("set = %v, veut updatedAt + 2 champs", set)
	}
	if set["salaryRange"] != "800-1500 USD" {
		t.Errorf("salaryRange = %v", set["salaryRange"])
	}
	if set["isActive"] != false {
		t.Errorf("isActive = %v, want false", set["isActive"])
	}
	if set["updatedAt"] != now {
		t.Errorf("updatedAt = %v, want %v", set["updatedAt"], now)
	}
}

func TestJobUpdateSetEmptyStillTouchesUpdatedAt(t *testing.T) {
	now := time.Now().UTC()
	set := handlers.JobUpdateSet(models.JobUpdate{}, now)
	if len(set) != 1 || set["updatedAt"] != now {
		t.Errorf("un PUT vide ne doit toucher que updatedAt, got %v", set)
	}
}

func TestTrainingListFilter(t *testing.T) {
	filter := handlers.TrainingListFilter("", "")
	if len(filter) != 1 || filter["isActive"] != true {
		t.Errorf("filtre par défaut = %v", filter)
	}

	filter = handlers.TrainingListFilter("Débutant", "kadea")
	if filter["level"] != "Débutant" {
		t.Errorf("level = %v", filter["level"])
	}
	regex, ok := filter["provider"].(primitive.Regex)
	if !ok || regex.Pattern != "kadea" || regex.Options != "i" {
		t.Errorf("provider = %v, veut une regex insensible à la casse", filter["provider"])
	}
}
