package models

import "time"

const (
	FirestoreVideosCollection      = "videos"
	FirestoreAnnotationsCollection = "annotations"
	FirestoreFeedbackCollection    = "feedback"
)

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReviewed FeedbackStatus = "reviewed"
)

// Video is the metadata document for an uploaded video blob.
type Video struct {
	ID              string         `json:"id" mapstructure:"id"`
	UploadedBy      string         `json:"uploadedBy" mapstructure:"uploadedBy"`
	RecordedFor     string         `json:"recordedFor" mapstructure:"recordedFor"`
	AssignedCoachID string         `json:"assignedCoachId" mapstructure:"assignedCoachId"`
	BlobName        string         `json:"blobName" mapstructure:"blobName"`
	VideoURL        string         `json:"videoUrl" mapstructure:"videoUrl"`
	DurationSeconds int            `json:"durationSeconds" mapstructure:"durationSeconds"`
	FeedbackStatus  FeedbackStatus `json:"feedbackStatus" mapstructure:"feedbackStatus"`
	IsPrivate       bool           `json:"isPrivate" mapstructure:"isPrivate"`
	VisibleTo       []string       `json:"visibleTo" mapstructure:"visibleTo"`
	UploadedAt      time.Time      `json:"uploadedAt" mapstructure:"uploadedAt"`
}

// Annotation is the metadata document for an annotation blob attached to a
// video.
type Annotation struct {
	ID            string    `json:"id" mapstructure:"id"`
	VideoID       string    `json:"videoId" mapstructure:"videoId"`
	CreatedBy     string    `json:"createdBy" mapstructure:"createdBy"`
	BlobName      string    `json:"blobName" mapstructure:"blobName"`
	AnnotationURL string    `json:"annotationUrl" mapstructure:"annotationUrl"`
	CreatedAt     time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// Feedback is the metadata document for coach feedback on a video. The voice
// note blob is optional.
type Feedback struct {
	ID           string    `json:"id" mapstructure:"id"`
	VideoID      string    `json:"videoId" mapstructure:"videoId"`
	CoachID      string    `json:"coachId" mapstructure:"coachId"`
	StudentID    string    `json:"studentId" mapstructure:"studentId"`
	Comments     string    `json:"comments" mapstructure:"comments"`
	BlobName     string    `json:"blobName,omitempty" mapstructure:"blobName"`
	VoiceNoteURI string    `json:"voiceNoteUri,omitempty" mapstructure:"voiceNoteUri"`
	CreatedAt    time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// UploadVideoRequest is the parameter struct for the UploadVideo function.
// VideoData carries the transport-encoded (base64) binary payload.
type UploadVideoRequest struct {
	VideoData       string `json:"videoData" validate:"required"`
	FileName        string `json:"fileName" validate:"required"`
	UploadedBy      string `json:"uploadedBy" validate:"required"`
	RecordedFor     string `json:"recordedFor" validate:"required"`
	AssignedCoachID string `json:"assignedCoachId" validate:"required"`
	DurationSeconds int    `json:"durationSeconds"`
}

// SaveFeedbackRequest is the parameter struct for the SaveFeedback function.
// VoiceNoteData, when present, is a base64 payload uploaded before the
// feedback document is written.
type SaveFeedbackRequest struct {
	// Will be set from the URL
	VideoID       string `json:",omitempty"`
	CoachID       string `json:"coachId" validate:"required"`
	StudentID     string `json:"studentId" validate:"required"`
	Comments      string `json:"comments"`
	VoiceNoteData string `json:"voiceNoteData"`
}

// UploadAnnotationRequest is the parameter struct for the UploadAnnotation function.
type UploadAnnotationRequest struct {
	// Will be set from the URL
	VideoID        string `json:",omitempty"`
	CreatedBy      string `json:"createdBy" validate:"required"`
	AnnotationData string `json:"annotationData" validate:"required"`
}
