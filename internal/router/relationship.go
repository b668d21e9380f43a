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

func RequestRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/", sendJoinRequestHandler)
	router.Post("/accept", acceptJoinRequestHandler)
	router.Post("/reject", rejectJoinRequestHandler)

	router.Get("/coach/{coachID}", getPendingRequestsForCoachHandler)
	router.Get("/student/{studentID}", getRequestsByStudentHandler)

	return router
}

func RelationshipRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Put("/addCoach", linkHandler(repo.Repository.AddCoachToStudent))
	router.Put("/addStudent", reversedLinkHandler(repo.Repository.AddStudentToCoach))
	router.Put("/removeCoach", linkHandler(repo.Repository.RemoveCoachFromStudent))
	router.Put("/removeStudent", reversedLinkHandler(repo.Repository.RemoveStudentFromCoach))

	return router
}

// POST: /
func sendJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SendJoinRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	request, err := repo.Repository.CreateJoinRequest(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, map[string]string{"id": request.ID})
}

// POST: /accept
func acceptJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AcceptJoinRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	request, err := repo.Repository.AcceptJoinRequest(req.RequestID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, request)
}

// POST: /reject
func rejectJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RejectJoinRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	request, err := repo.Repository.RejectJoinRequest(req.RequestID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, request)
}

// GET: /coach/{coachID}
func getPendingRequestsForCoachHandler(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")

	requests, err := repo.Repository.GetPendingRequestsForCoach(coachID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, requests)
}

// GET: /student/{studentID}
func getRequestsByStudentHandler(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")

	requests, err := repo.Repository.GetRequestsByStudent(studentID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, requests)
}

// linkHandler builds a handler for the student-side relationship mutations.
// Each mutation touches exactly one document and returns it updated.
func linkHandler(op func(studentID, coachID string) (*models.User, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLinkRequest(w, r)
		if !ok {
			return
		}

		user, err := op(req.StudentID, req.CoachID)
		if err != nil {
			respondError(w, err)
			return
		}

		render.JSON(w, r, user)
	}
}

// reversedLinkHandler is linkHandler for the coach-side mutations, which take
// their arguments in (coachID, studentID) order.
func reversedLinkHandler(op func(coachID, studentID string) (*models.User, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLinkRequest(w, r)
		if !ok {
			return
		}

		user, err := op(req.CoachID, req.StudentID)
		if err != nil {
			respondError(w, err)
			return
		}

		render.JSON(w, r, user)
	}
}

func decodeLinkRequest(w http.ResponseWriter, r *http.Request) (*models.LinkRequest, bool) {
	var req models.LinkRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return nil, false
	}

	return &req, true
}
