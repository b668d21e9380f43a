package apperrors

import "errors"

var (
	// User errors
	EmailExistsError        = errors.New("a user with that email address already exists")
	UserNotFoundError       = errors.New("user not found")
	InvalidCredentialsError = errors.New("incorrect email or password")

	// Join request errors
	RequestNotFoundError = errors.New("join request not found")
	InvalidRequestID     = errors.New("the provided request id is not valid")

	// Media errors
	VideoNotFoundError    = errors.New("video not found")
	PartialUploadError    = errors.New("blob uploaded but metadata write failed")
	InvalidMediaPayload   = errors.New("media payload is not valid base64")
	AnnotationNotFound    = errors.New("annotation not found")
	FeedbackNotFoundError = errors.New("feedback not found")

	// Request body errors
	InvalidBody = errors.New("the request body is missing a required field")
)
