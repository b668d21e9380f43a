package router

import (
	"encoding/json"
	"net/http"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/auth"
	"becomebetter/internal/config"
	"becomebetter/internal/models"
	repo "becomebetter/internal/repository"
	"becomebetter/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func AuthRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/signup", signUpHandler)
	router.Post("/signin", signInHandler)
	router.Post("/signupJWT", signUpJWTHandler)
	router.Post("/signinJWT", signInJWTHandler)

	router.Get("/{userID}", getUserHandler)
	router.Get("/", getUserByEmailHandler)

	// Routes that require authentication
	router.Route("/me", func(r chi.Router) {
		r.Use(auth.AuthCtx())
		r.Post("/update", updateUserHandler)
		r.Post("/pushToken", savePushTokenHandler)
	})

	return router
}

// tokenResponse is the JWT sign-in/sign-up response shape.
type tokenResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func createUser(w http.ResponseWriter, r *http.Request) *models.User {
	var req models.CreateUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return nil
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, err)
		return nil
	}

	user, err := repo.Repository.CreateUser(&req, hash)
	if err != nil {
		respondError(w, err)
		return nil
	}

	return user
}

// POST: /signup
func signUpHandler(w http.ResponseWriter, r *http.Request) {
	user := createUser(w, r)
	if user == nil {
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}

// POST: /signupJWT
func signUpJWTHandler(w http.ResponseWriter, r *http.Request) {
	user := createUser(w, r)
	if user == nil {
		return
	}

	token, err := auth.GenerateToken(user, config.Config.SigningSecret, config.Config.TokenExpiration)
	if err != nil {
		respondError(w, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tokenResponse{User: user, Token: token})
}

func signIn(w http.ResponseWriter, r *http.Request) *models.User {
	var req models.SignInRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return nil
	}

	user, err := repo.Repository.GetUserByEmail(req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		respondError(w, apperrors.InvalidCredentialsError)
		return nil
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(w, apperrors.InvalidCredentialsError)
		return nil
	}

	return user
}

// POST: /signin
func signInHandler(w http.ResponseWriter, r *http.Request) {
	user := signIn(w, r)
	if user == nil {
		return
	}

	render.JSON(w, r, user)
}

// POST: /signinJWT
func signInJWTHandler(w http.ResponseWriter, r *http.Request) {
	user := signIn(w, r)
	if user == nil {
		return
	}

	token, err := auth.GenerateToken(user, config.Config.SigningSecret, config.Config.TokenExpiration)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, tokenResponse{User: user, Token: token})
}

// GET: /{userID}
func getUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := repo.Repository.GetUserByID(userID)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, user)
}

// GET: /?email=
func getUserByEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, apperrors.InvalidBody)
		return
	}

	user, err := repo.Repository.GetUserByEmail(email)
	if err != nil {
		respondError(w, err)
		return
	}

	render.JSON(w, r, user)
}

// POST: /me/update
func updateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	claims, err := auth.GetClaimsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	req.UserID = claims.UserID

	if err := repo.Repository.UpdateUser(&req); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("successfully edited user " + req.UserID))
}

// POST: /me/pushToken
func savePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SavePushTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	claims, err := auth.GetClaimsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	req.UserID = claims.UserID

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := repo.Repository.SavePushToken(&req); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("success"))
}
