package handlers_test

import (
	"reflect"
	"testing"

	"kongenga_back_end/internal/handlers"
	"kongenga_back_end/internal/models"
)

func TestToggleFavoriteAdd(t *testing.T) {
	got, added := handlers.ToggleFavorite([]string{"a", "b"}, "c")
	if !added {
		t.Error("un métier absent doit être ajouté")
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("favoris = %v", got)
	}
}

func TestToggleFavoriteRemove(t *testing.T) {
	got, added := handlers.ToggleFavorite([]string{"a", "b", "c"}, "b")
	if added {
		t.Error("un métier présent doit être retiré")
	}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("favoris = %v", got)
	}
}

// Le toggle est sa propre inverse: deux appels successifs ramènent la
// liste à son état initial.
func TestToggleFavoriteInvolution(t *testing.T) {
	initial := []string{"x", "y"}
	once, _ := handlers.ToggleFavorite(initial, "z")
	twice, _ := handlers.ToggleFavorite(once, "z")
	if !reflect.DeepEqual(twice, initial) {
		t.Errorf("double toggle = %v, want %v", twice, initial)
	}
}

func TestToggleFavoriteNilList(t *testing.T) {
	got, added := handlers.ToggleFavorite(nil, "a")
	if !added || !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("toggle sur liste nil = %v (added=%v)", got, added)
	}
}

func TestToggleFavoriteDoesNotMutateInput(t *testing.T) {
	initial := []string{"a", "b", "c"}
	handlers.ToggleFavorite(initial, "b")
	if !reflect.DeepEqual(initial, []string{"a", "b", "c"}) {
		t.Errorf("la liste d'entrée a été modifiée: %v", initial)
	}
}

func TestUserUpdateSet(t *testing.T) {
	name := "Jean Mbuyi"
	lang := models.LangLingala

	set := handlers.UserUpdateSet(models.UserUpdate{
		Name:              &name,
		PreferredLanguage: &lang,
	})

	if len(set) != 2 {
		t.Fatalf("set = %v, veut exactement 2 champs", set)
	}
	if set["name"] != "Jean Mbuyi" {
		t.Errorf("name = %v", set["name"])
	}
	if set["preferredLanguage"] != models.LangLingala {
		t.Errorf("preferredLanguage = %v", set["preferredLanguage"])
	}
}

func TestUserUpdateSetEmpty(t *testing.T) {
	set := handlers.UserUpdateSet(models.UserUpdate{})
	if len(set) != 0 {
		t.Errorf("une mise à jour vide ne doit rien pousser, got %v", set)
	}
}
