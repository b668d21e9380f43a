package router

import (
	"encoding/json"
	"net/http"

	"becomebetter/internal/middleware"
	"becomebetter/internal/models"
	repo "becomebetter/internal/repository"
	"becomebetter/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func VideoRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/", uploadVideoHandler)

	router.Get("/student/{studentID}", getVideosByStudentHandler)
	router.Get("/coach/{coachID}", getVideosByCoachHandler)

	router.Route("/{videoID}", func(r chi.Router) {
		r.Use(middleware.VideoCtx())

		r.Get("/", getVideoHandler)
		r.Delete("/", deleteVideoHandler)

		r.Post("/feedback", saveFeedbackHandler)
		r.Get("/feedback", getFeedbackHandler)

		r.Post("/annotations", uploadAnnotationHandler)
		r.Get("/annotations", getAnnotationsHandler)
	})

	return router
}

// POST: /
func uploadVideoHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UploadVideoRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	video, err := repo.Repository.UploadVideo(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, video)
}

// GET: /{videoID}
func getVideoHandler(w http.ResponseWriter, r *http.Request) {
	videoID := r.Context().Value("videoID").(string)

	video, err := repo.Repository.GetVideoByID(videoID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, video)
}

// DELETE: /{videoID}
func deleteVideoHandler(w http.ResponseWriter, r *http.Request) {
	videoID := r.Context().Value("videoID").(string)

	if err := repo.Repository.DeleteVideo(videoID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("success"))
}

// GET: /student/{studentID}?coachId=
func getVideosByStudentHandler(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")
	coachID := r.URL.Query().Get("coachId")

	videos, err := repo.Repository.GetVideosByStudent(studentID, coachID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, videos)
}

// GET: /coach/{coachID}
func getVideosByCoachHandler(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")

	videos, err := repo.Repository.GetVideosByCoach(coachID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, videos)
}

// POST: /{videoID}/feedback
func saveFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SaveFeedbackRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.VideoID = r.Context().Value("videoID").(string)

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	feedback, err := repo.Repository.SaveFeedback(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, feedback)
}

// GET: /{videoID}/feedback
func getFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	videoID := r.Context().Value("videoID").(string)

	feedbacks, err := repo.Repository.GetFeedbackForVideo(videoID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, feedbacks)
}

// POST: /{videoID}/annotations
func uploadAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UploadAnnotationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.VideoID = r.Context().Value("videoID").(string)

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	annotation, err := repo.Repository.UploadAnnotation(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, annotation)
}

// GET: /{videoID}/annotations
func getAnnotationsHandler(w http.ResponseWriter, r *http.Request) {
	videoID := r.Context().Value("videoID").(string)

	annotations, err := repo.Repository.GetAnnotationsForVideo(videoID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, annotations)
}
