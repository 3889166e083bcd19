package utils_test

import (
	"testing"

	"kongenga_back_end/internal/models"
	"kongenga_back_end/internal/utils"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := models.User{
		ID:    "user-42",
		Email: "etudiant@example.cd",
		Role:  models.RoleStudent,
	}

	token, err := utils.GenerateJWT("secret-de-test", user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	sub, err := utils.ParseJWT("secret-de-test", token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if sub != "user-42" {
		t.Errorf("sujet = %q, want user-42", sub)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("secret-a", models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := utils.ParseJWT("secret-b", token); err == nil {
		t.Error("un token signé avec un autre secret doit être rejeté")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := utils.ParseJWT("secret", "pas.un.token"); err == nil {
		t.Error("un token malformé doit être rejeté")
	}
}
