package models_test

import (
	"testing"

	"kongenga_back_end/internal/models"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want models.Language
	}{
		{"fr", models.LangFrench},
		{"ln", models.LangLingala},
		{"sw", models.LangSwahili},
		{"en", models.LangEnglish},
		{"kg", models.LangKikongo},
		{"", models.LangFrench},
		{"de", models.LangFrench},
		{"FR", models.LangFrench},
	}
	for _, tt := range tests {
		if got := models.ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMultilingualTextIn(t *testing.T) {
	text := models.MultilingualText{
		Fr: "Développeur",
		Ln: "Mosali ya programme",
		En: "Developer",
	}

	tests := []struct {
		lang models.Language
		want string
	}{
		{models.LangFrench, "Développeur"},
		{models.LangLingala, "Mosali ya programme"},
		{models.LangEnglish, "Developer"},
		// traductions absentes: repli sur le français
		{models.LangSwahili, "Développeur"},
		{models.LangKikongo, "Développeur"},
	}
	for _, tt := range tests {
		if got := text.In(tt.lang); got != tt.want {
			t.Errorf("In(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestLanguageField(t *testing.T) {
	if got := models.LangFrench.Field("title"); got != "title.fr" {
		t.Errorf("Field(title) = %q, want title.fr", got)
	}
	if got := models.LangSwahili.Field("description"); got != "description.sw" {
		t.Errorf("Field(description) = %q, want description.sw", got)
	}
}

func TestDefaultProgress(t *testing.T) {
	p := models.DefaultProgress()
	if p.ProfileComplete != 30 {
		t.Errorf("ProfileComplete = %d, want 30", p.ProfileComplete)
	}
	if p.JobsExplored != 0 || p.TrainingsStarted != 0 || p.SkillsAssessed != 0 {
		t.Errorf("les compteurs d'un nouveau profil doivent être à zéro: %+v", p)
	}
}

func TestUserResponseHidesPassword(t *testing.T) {
	u := models.User{
		ID:           "u1",
		Name:         "Marie",
		Email:        "marie@example.cd",
		PasswordHash: "secret-hash",
		Role:         models.RoleStudent,
	}
	resp := u.Response()
	if resp.ID != "u1" || resp.Email != "marie@example.cd" {
		t.Errorf("Response() = %+v", resp)
	}
	if resp.FavoriteJobs == nil {
		t.Error("FavoriteJobs doit être une liste vide, jamais nil")
	}
}
