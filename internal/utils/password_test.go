package utils_test

import (
	"testing"

	"kongenga_back_end/internal/utils"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("motdepasse123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "motdepasse123" {
		t.Fatal("le hash ne doit pas être le mot de passe en clair")
	}
	if !utils.CheckPassword("motdepasse123", hash) {
		t.Error("CheckPassword doit accepter le bon mot de passe")
	}
	if utils.CheckPassword("mauvais", hash) {
		t.Error("CheckPassword doit refuser un mauvais mot de passe")
	}
}
