package config_test

import (
	"reflect"
	"testing"

	"kongenga_back_end/internal/config"
)

func TestMissingVars(t *testing.T) {
	empty := config.Config{}
	if got := empty.MissingVars(); !reflect.DeepEqual(got, []string{"MONGO_URL", "JWT_SECRET"}) {
		t.Errorf("MissingVars() = %v, want les deux variables obligatoires", got)
	}

	full := config.Config{MongoURL: "mongodb://localhost:27017", JWTSecret: "secret"}
	if got := full.MissingVars(); len(got) != 0 {
		t.Errorf("MissingVars() = %v, want aucune", got)
	}

	partial := config.Config{MongoURL: "mongodb://localhost:27017"}
	if got := partial.MissingVars(); !reflect.DeepEqual(got, []string{"JWT_SECRET"}) {
		t.Errorf("MissingVars() = %v, want JWT_SECRET seul", got)
	}
}
