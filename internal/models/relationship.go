package models

import "time"

const (
	FirestoreRequestsCollection = "requests"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// JoinRequest represents a pending invitation from a student to a coach.
//
// The document ID keeps the historical {studentId}-{coachId}-{timestamp} shape
// for wire compatibility, but StudentID and CoachID are stored as explicit
// fields and are authoritative for lookups. Requests are never deleted.
type JoinRequest struct {
	ID        string        `json:"id" mapstructure:"id"`
	StudentID string        `json:"studentId" mapstructure:"studentId"`
	CoachID   string        `json:"coachId" mapstructure:"coachId"`
	Status    RequestStatus `json:"status" mapstructure:"status"`
	CreatedAt time.Time     `json:"timestamp" mapstructure:"timestamp"`
}

// SendJoinRequestRequest is the parameter struct for the SendJoinRequest function.
type SendJoinRequestRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	CoachID   string `json:"coachId" validate:"required"`
}

// AcceptJoinRequestRequest is the parameter struct for the AcceptJoinRequest function.
type AcceptJoinRequestRequest struct {
	RequestID string `json:"requestId" validate:"required"`
}

// RejectJoinRequestRequest is the parameter struct for the RejectJoinRequest function.
type RejectJoinRequestRequest struct {
	RequestID string `json:"requestId" validate:"required"`
}

// LinkRequest is the parameter struct for the relationship add/remove
// functions. Both sides are named explicitly; each handler mutates exactly one
// of them.
type LinkRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	CoachID   string `json:"coachId" validate:"required"`
}
