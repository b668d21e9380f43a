package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"becomebetter/internal/apperrors"

	"github.com/golang/glog"
)

// respondError maps an application error to its HTTP status and writes a JSON
// message body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.UserNotFoundError),
		errors.Is(err, apperrors.RequestNotFoundError),
		errors.Is(err, apperrors.VideoNotFoundError),
		errors.Is(err, apperrors.AnnotationNotFound),
		errors.Is(err, apperrors.FeedbackNotFoundError):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.EmailExistsError),
		errors.Is(err, apperrors.InvalidRequestID),
		errors.Is(err, apperrors.InvalidMediaPayload),
		errors.Is(err, apperrors.InvalidBody):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.InvalidCredentialsError):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		glog.Errorf("internal error: %v\n", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{"message": err.Error()}
	jsonResp, err := json.Marshal(resp)
	if err != nil {
		glog.Warningln("failed to marshall json error response")
		return
	}
	if _, err := w.Write(jsonResp); err != nil {
		glog.Warningf("failed to write response: %v\n", err)
	}
}

// respondValidationError writes a 400 with the validation message.
func respondValidationError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}
