package repository

import (
	"becomebetter/internal/dashboard"
	"becomebetter/internal/firebase"
	"becomebetter/internal/models"
	"becomebetter/internal/relationship"
)

// CoachDashboard aggregates the numbers for a coach's home screen: student
// count plus video totals split by feedback status.
func (fr *FirebaseRepository) CoachDashboard(coachID string) (*dashboard.CoachSummary, error) {
	coach, err := fr.GetUserByID(coachID)
	if err != nil {
		return nil, err
	}

	videos, err := fr.GetVideosByCoach(coachID)
	if err != nil {
		return nil, err
	}

	return dashboard.SummarizeCoach(coach, videos), nil
}

// StudentDashboard aggregates the numbers for a student's home screen.
func (fr *FirebaseRepository) StudentDashboard(studentID string) (*dashboard.StudentSummary, error) {
	student, err := fr.GetUserByID(studentID)
	if err != nil {
		return nil, err
	}

	videos, err := fr.GetVideosByStudent(studentID, "")
	if err != nil {
		return nil, err
	}

	return dashboard.SummarizeStudent(student, videos), nil
}

// FilterVideos answers the generic dashboard list query: up to two filters,
// all matching documents returned in one response.
func (fr *FirebaseRepository) FilterVideos(coachID, studentID string, status models.FeedbackStatus) ([]*models.Video, error) {
	query := fr.firestoreClient.Collection(models.FirestoreVideosCollection).Query
	if coachID != "" {
		query = query.Where("assignedCoachId", "==", relationship.NormalizeID(coachID))
	}
	if studentID != "" {
		query = query.Where("recordedFor", "==", relationship.NormalizeID(studentID))
	}
	if status != "" {
		query = query.Where("feedbackStatus", "==", string(status))
	}

	return fr.decodeVideos(query.Documents(firebase.Context))
}

// RecentUploads returns the latest uploads for a coach, newest first.
func (fr *FirebaseRepository) RecentUploads(coachID string, limit int) ([]*models.Video, error) {
	videos, err := fr.GetVideosByCoach(coachID)
	if err != nil {
		return nil, err
	}

	return dashboard.RecentFirst(videos, limit), nil
}
