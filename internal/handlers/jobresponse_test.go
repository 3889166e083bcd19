package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"kongenga_back_end/internal/handlers"
	"kongenga_back_end/internal/models"
)

func TestGetJobByIDSoftDeleted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("métier désactivé introuvable en accès direct", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.GET("/jobs/:id", handlers.GetJobByID(db))

		// Le filtre isActive exclut le document : curseur vide.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".jobs", mtest.FirstBatch))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/j1", nil))
		if w.Code != http.StatusNotFound {
			mt.Errorf("status = %d, want 404", w.Code)
		}
	})
}

// Une référence pendante raccourcit le tableau résolu sans erreur :
// deux IDs d'entreprises, une seule existe encore.
func TestGetJobByIDDanglingReferences(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("référence pendante ignorée", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.GET("/jobs/:id", handlers.GetJobByID(db))

		job := bson.D{
			{Key: "id", Value: "j1"},
			{Key: "isActive", Value: true},
			{Key: "companies", Value: bson.A{"c1", "c2"}},
		}
		company := bson.D{
			{Key: "id", Value: "c1"},
			{Key: "name", Value: "Vodacom Congo"},
			{Key: "isActive", Value: true},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".jobs", mtest.FirstBatch, job),
			mtest.CreateCursorResponse(0, mt.DB.Name()+".companies", mtest.FirstBatch, company),
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/j1", nil))
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		var resp models.JobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("réponse illisible: %v", err)
		}
		if len(resp.Companies) != 1 || resp.Companies[0].ID != "c1" {
			mt.Errorf("companies = %+v, want uniquement c1", resp.Companies)
		}
		if resp.Training == nil || resp.Testimonials == nil {
			mt.Error("les listes vides doivent rester des tableaux, jamais null")
		}
	})
}
