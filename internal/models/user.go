package models

import "time"

type UserRole string

const (
	RoleStudent     UserRole = "student"
	RoleSiteManager UserRole = "site_manager"
)

// UserProgress suit la progression d'un étudiant sur la plateforme.
type UserProgress struct {
	ProfileComplete  int `json:"profileComplete" bson:"profileComplete"`
	JobsExplored     int `json:"jobsExplored" bson:"jobsExplored"`
	TrainingsStarted int `json:"trainingsStarted" bson:"trainingsStarted"`
	SkillsAssessed   int `json:"skillsAssessed" bson:"skillsAssessed"`
}

// DefaultProgress : un profil fraîchement créé démarre à 30%.
func DefaultProgress() UserProgress {
	return UserProgress{ProfileComplete: 30}
}

type User struct {
	ID                string       `json:"id" bson:"id"`
	Name              string       `json:"name" bson:"name"`
	Email             string       `json:"email" bson:"email"`
	PasswordHash      string       `json:"-" bson:"password_hash"`
	Role              UserRole     `json:"role" bson:"role"`
	University        string       `json:"university,omitempty" bson:"university,omitempty"`
	Year              string       `json:"year,omitempty" bson:"year,omitempty"`
	Field             string       `json:"field,omitempty" bson:"field,omitempty"`
	FavoriteJobs      []string     `json:"favoriteJobs" bson:"favoriteJobs"`
	Progress          UserProgress `json:"progress" bson:"progress"`
	PreferredLanguage Language     `json:"preferredLanguage" bson:"preferredLanguage"`
	Avatar            string       `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
	LastActive        *time.Time   `json:"lastActive,omitempty" bson:"lastActive,omitempty"`
}

type UserCreate struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	University string `json:"university"`
	Year       string `json:"year"`
	Field      string `json:"field"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"omitempty,oneof=student manager"`
}

// UserUpdate : mise à jour partielle du profil, seuls les champs
// renseignés sont poussés en base.
type UserUpdate struct {
	Name              *string   `json:"name"`
	University        *string   `json:"university"`
	Year              *string   `json:"year"`
	Field             *string   `json:"field"`
	PreferredLanguage *Language `json:"preferredLanguage" binding:"omitempty,oneof=fr ln sw en kg"`
}

// UserResponse : vue publique d'un utilisateur, sans le hash.
type UserResponse struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Role              UserRole     `json:"role"`
	University        string       `json:"university,omitempty"`
	Year              string       `json:"year,omitempty"`
	Field             string       `json:"field,omitempty"`
	FavoriteJobs      []string     `json:"favoriteJobs"`
	Progress          UserProgress `json:"progress"`
	PreferredLanguage Language     `json:"preferredLanguage"`
	Avatar            string       `json:"avatar,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
}

func (u User) Response() UserResponse {
	favs := u.FavoriteJobs
	if favs == nil {
		favs = []string{}
	}
	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		University:        u.University,
		Year:              u.Year,
		Field:             u.Field,
		FavoriteJobs:      favs,
		Progress:          u.Progress,
		PreferredLanguage: u.PreferredLanguage,
		Avatar:            u.Avatar,
		CreatedAt:         u.CreatedAt,
	}
}
