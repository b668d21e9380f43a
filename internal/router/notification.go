package router

import (
	"encoding/json"
	"net/http"

	"becomebetter/internal/models"
	repo "becomebetter/internal/repository"
	"becomebetter/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func NotificationRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/coach", notifyCoachHandler)
	return router
}

// POST: /coach
func notifyCoachHandler(w http.ResponseWriter, r *http.Request) {
	var req models.NotifyCoachRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := repo.Repository.NotifyCoach(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	// A coach with no registered devices is not an error.
	if result.NoRecipients {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	render.JSON(w, r, result)
}
