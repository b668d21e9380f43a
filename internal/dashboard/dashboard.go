// Package dashboard shapes query results into the aggregate numbers the
// client dashboards render. Does not need/use any Firebase connection.
package dashboard

import (
	"sort"

	"becomebetter/internal/models"
)

// CoachSummary is the aggregate view for a coach's home screen.
type CoachSummary struct {
	CoachID              string `json:"coachId"`
	StudentCount         int    `json:"studentCount"`
	TotalVideos          int    `json:"totalVideos"`
	PendingFeedbackCount int    `json:"pendingFeedbackCount"`
}

// StudentSummary is the aggregate view for a student's home screen.
type StudentSummary struct {
	StudentID     string `json:"studentId"`
	CoachCount    int    `json:"coachCount"`
	TotalVideos   int    `json:"totalVideos"`
	ReviewedCount int    `json:"reviewedCount"`
}

// SummarizeCoach builds a CoachSummary from the coach document and the
// videos assigned to them.
func SummarizeCoach(coach *models.User, videos []*models.Video) *CoachSummary {
	summary := &CoachSummary{
		CoachID:      coach.ID,
		StudentCount: len(coach.Students),
		TotalVideos:  len(videos),
	}
	for _, video := range videos {
		if video.FeedbackStatus == models.FeedbackPending {
			summary.PendingFeedbackCount++
		}
	}
	return summary
}

// SummarizeStudent builds a StudentSummary from the student document and the
// videos recorded for them.
func SummarizeStudent(student *models.User, videos []*models.Video) *StudentSummary {
	summary := &StudentSummary{
		StudentID:   student.ID,
		CoachCount:  len(student.Coaches),
		TotalVideos: len(videos),
	}
	for _, video := range videos {
		if video.FeedbackStatus == models.FeedbackReviewed {
			summary.ReviewedCount++
		}
	}
	return summary
}

// CountByStatus buckets videos by their feedback status.
func CountByStatus(videos []*models.Video) map[models.FeedbackStatus]int {
	counts := make(map[models.FeedbackStatus]int)
	for _, video := range videos {
		counts[video.FeedbackStatus]++
	}
	return counts
}

// RecentFirst returns up to limit videos ordered newest upload first. The
// input slice is not modified.
func RecentFirst(videos []*models.Video, limit int) []*models.Video {
	sorted := make([]*models.Video, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadedAt.After(sorted[j].UploadedAt)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
