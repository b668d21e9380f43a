package router

import (
	"net/http"
	"strconv"

	"becomebetter/internal/models"
	repo "becomebetter/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func DashboardRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/coach/{coachID}", getCoachDashboardHandler)
	router.Get("/coach/{coachID}/recent", getRecentUploadsHandler)
	router.Get("/student/{studentID}", getStudentDashboardHandler)
	router.Get("/videos", filterVideosHandler)

	return router
}

// GET: /coach/{coachID}
func getCoachDashboardHandler(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")

	summary, err := repo.Repository.CoachDashboard(coachID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, summary)
}

// GET: /student/{studentID}
func getStudentDashboardHandler(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")

	summary, err := repo.Repository.StudentDashboard(studentID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, summary)
}

// GET: /videos?coachId=&studentId=&status=
func filterVideosHandler(w http.ResponseWriter, r *http.Request) {
	coachID := r.URL.Query().Get("coachId")
	studentID := r.URL.Query().Get("studentId")
	status := models.FeedbackStatus(r.URL.Query().Get("status"))

	videos, err := repo.Repository.FilterVideos(coachID, studentID, status)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, videos)
}

// GET: /coach/{coachID}/recent?limit=
func getRecentUploadsHandler(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	videos, err := repo.Repository.RecentUploads(coachID, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, videos)
}
