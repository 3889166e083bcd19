package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"kongenga_back_end/internal/handlers"
	"kongenga_back_end/internal/middleware"
	"kongenga_back_end/internal/models"
)

func TestToggleFavoriteJobRemovesDeactivatedJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("retrait d'un favori dont le métier est désactivé", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/users/favorites/:jobId",
			func(c *gin.Context) {
				c.Set(middleware.CtxUser, models.User{
					ID:           "u1",
					Role:         models.RoleStudent,
					FavoriteJobs: []string{"j1"},
				})
			},
			handlers.ToggleFavoriteJob(db))

		// Un seul aller-retour attendu : la mise à jour des favoris.
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/favorites/j1", nil))
		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		var resp struct {
			Action       string   `json:"action"`
			FavoriteJobs []string `json:"favoriteJobs"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			mt.Fatalf("réponse illisible: %v", err)
		}
		if resp.Action != "removed" {
			mt.Errorf("action = %q, want removed", resp.Action)
		}
		if len(resp.FavoriteJobs) != 0 {
			mt.Errorf("favoris = %v, want liste vide", resp.FavoriteJobs)
		}
		// Le retrait ne consulte jamais la collection des métiers.
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "aggregate" {
				mt.Error("le retrait d'un favori ne doit pas vérifier le métier")
			}
		}
	})

	mt.Run("ajout refusé pour un métier inexistant ou désactivé", func(mt *mtest.T) {
		db := newMockDB(mt)
		r := gin.New()
		r.POST("/users/favorites/:jobId",
			func(c *gin.Context) {
				c.Set(middleware.CtxUser, models.User{
					ID:           "u1",
					Role:         models.RoleStudent,
					FavoriteJobs: []string{},
				})
			},
			handlers.ToggleFavoriteJob(db))

		// Le comptage ne trouve aucun métier actif.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".jobs", mtest.FirstBatch))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/favorites/j9", nil))
		if w.Code != http.StatusNotFound {
			mt.Errorf("status = %d, want 404", w.Code)
		}
	})
}
