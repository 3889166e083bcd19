package models

// Language couvre les cinq langues de la plateforme.
type Language string

const (
	LangFrench  Language = "fr"
	LangLingala Language = "ln"
	LangSwahili Language = "sw"
	LangEnglish Language = "en"
	LangKikongo Language = "kg"
)

// ParseLanguage valide un code langue, français par défaut.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangLingala, LangSwahili, LangEnglish, LangKikongo:
		return Language(s)
	default:
		return LangFrench
	}
}

// MultilingualText porte le même texte dans les cinq langues.
// Seul le français est obligatoire.
type MultilingualText struct {
	Fr string `json:"fr" bson:"fr" binding:"required"`
	Ln string `json:"ln,omitempty" bson:"ln,omitempty"`
	Sw string `json:"sw,omitempty" bson:"sw,omitempty"`
	En string `json:"en,omitempty" bson:"en,omitempty"`
	Kg string `json:"kg,omitempty" bson:"kg,omitempty"`
}

// In retourne le texte dans la langue demandée, français si la
// traduction manque.
func (t MultilingualText) In(lang Language) string {
	var s string
	switch lang {
	case LangLingala:
		s = t.Ln
	case LangSwahili:
		s = t.Sw
	case LangEnglish:
		s = t.En
	case LangKikongo:
		s = t.Kg
	}
	if s == "" {
		return t.Fr
	}
	return s
}

// Field retourne la clé bson d'un champ multilingue pour la langue
// demandée (title.fr, description.ln, ...), pour les requêtes de
// recherche.
func (lang Language) Field(prefix string) string {
	return prefix + "." + string(lang)
}

// ExternalLink décrit un lien externe (site web, formation, ...).
type ExternalLink struct {
	Name        string `json:"name" bson:"name" binding:"required"`
	URL         string `json:"url" bson:"url" binding:"required"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}
