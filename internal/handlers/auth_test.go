package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"kongenga_back_end/internal/config"
	"kongenga_back_end/internal/database"
	"kongenga_back_end/internal/handlers"
)

func newMockDB(mt *mtest.T) *database.DB {
	return &database.DB{Client: mt.Client, Mongo: mt.DB}
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	cfg := config.Config{JWTSecret: "secret-de-test"}

	mt.Run("email déjà enregistré", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/auth/register", handlers.Register(db, cfg))

		// Le comptage trouve déjà un compte avec cet email.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(1)}}))

		w := postJSON(r, "/auth/register", gin.H{
			"name":     "Marie Nkunku",
			"email":    "marie@example.cd",
			"password": "motdepasse123",
		})
		if w.Code != http.StatusBadRequest {
			mt.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
		}
		// Le premier compte reste intact : aucune écriture tentée.
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "insert" {
				mt.Error("aucune insertion ne doit avoir lieu quand l'email existe déjà")
			}
		}
	})

	mt.Run("course perdue sur l'index unique", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/auth/register", handlers.Register(db, cfg))

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
		)

		w := postJSON(r, "/auth/register", gin.H{
			"name":     "Marie Nkunku",
			"email":    "marie@example.cd",
			"password": "motdepasse123",
		})
		if w.Code != http.StatusBadRequest {
			mt.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
		}
	})
}

func TestLoginBootstrapAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	cfg := config.Config{
		JWTSecret:     "secret-de-test",
		AdminEmail:    "admin@kongenga.cd",
		AdminPassword: "motdepasse-admin",
	}
	body := gin.H{"email": cfg.AdminEmail, "password": cfg.AdminPassword, "userType": "manager"}

	mt.Run("création au premier login", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/auth/login", handlers.Login(db, cfg))

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch), // compte absent
			mtest.CreateSuccessResponse(), // insertion du compte
			mtest.CreateSuccessResponse(), // mise à jour lastActive
		)

		w := postJSON(r, "/auth/login", body)
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		var resp struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Role string `json:"role"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("réponse illisible: %v", err)
		}
		if resp.User.Role != "site_manager" {
			mt.Errorf("role = %q, want site_manager", resp.User.Role)
		}
		if resp.AccessToken == "" {
			mt.Error("access_token manquant")
		}

		inserts := 0
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "insert" {
				inserts++
			}
		}
		if inserts != 1 {
			mt.Errorf("insertions = %d, want exactement 1", inserts)
		}
	})

	mt.Run("logins suivants réutilisent le compte", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/auth/login", handlers.Login(db, cfg))

		existing := bson.D{
			{Key: "id", Value: "admin-1"},
			{Key: "name", Value: "Administrateur KONGENGA"},
			{Key: "email", Value: cfg.AdminEmail},
			{Key: "password_hash", Value: "jamais-relu-sur-ce-chemin"},
			{Key: "role", Value: "site_manager"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(), // mise à jour lastActive
		)

		w := postJSON(r, "/auth/login", body)
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		var resp struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("réponse illisible: %v", err)
		}
		if resp.User.ID != "admin-1" {
			mt.Errorf("id = %q, want admin-1 (compte existant)", resp.User.ID)
		}
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "insert" {
				mt.Error("le compte bootstrap ne doit être créé qu'une seule fois")
			}
		}
	})
}
