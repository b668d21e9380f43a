package models

// NotifyCoachRequest is the parameter struct for the NotifyCoach function.
type NotifyCoachRequest struct {
	CoachID string `json:"coachId" validate:"required"`
	VideoID string `json:"videoId" validate:"required"`
}

// NotifyResult reports the outcome of one push dispatch. An empty recipient
// set is a success, not an error.
type NotifyResult struct {
	NoRecipients bool `json:"noRecipients,omitempty"`
	SuccessCount int  `json:"successCount"`
	FailureCount int  `json:"failureCount"`
}
