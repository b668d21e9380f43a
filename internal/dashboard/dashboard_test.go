package dashboard

import (
	"fmt"
	"testing"
	"time"

	"becomebetter/internal/models"
)

func createVideo(id int, status models.FeedbackStatus, uploadOffset int) *models.Video {
	return &models.Video{
		ID:             fmt.Sprintf("v%d", id),
		FeedbackStatus: status,
		UploadedAt:     time.Unix(1700000000, 0).Add(time.Duration(uploadOffset) * time.Second),
	}
}

func createVideos() []*models.Video {
	return []*models.Video{
		createVideo(1, models.FeedbackPending, 0),
		createVideo(2, models.FeedbackReviewed, 10),
		createVideo(3, models.FeedbackPending, 5),
		createVideo(4, models.FeedbackReviewed, 2),
	}
}

func TestSummarizeCoach(t *testing.T) {
	coach := &models.User{
		ID:       "c1",
		Role:     models.RoleCoach,
		Students: []string{"s1", "s2", "s3"},
	}

	summary := SummarizeCoach(coach, createVideos())

	if summary.StudentCount != 3 {
		t.Errorf("expected 3 students, got %d", summary.StudentCount)
	}
	if summary.TotalVideos != 4 {
		t.Errorf("expected 4 videos, got %d", summary.TotalVideos)
	}
	if summary.PendingFeedbackCount != 2 {
		t.Errorf("expected 2 pending, got %d", summary.PendingFeedbackCount)
	}
}

func TestSummarizeStudent(t *testing.T) {
	student := &models.User{
		ID:      "s1",
		Role:    models.RolePlayer,
		Coaches: []string{"c1"},
	}

	summary := SummarizeStudent(student, createVideos())

	if summary.CoachCount != 1 {
		t.Errorf("expected 1 coach, got %d", summary.CoachCount)
	}
	if summary.ReviewedCount != 2 {
		t.Errorf("expected 2 reviewed, got %d", summary.ReviewedCount)
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(createVideos())

	if counts[models.FeedbackPending] != 2 || counts[models.FeedbackReviewed] != 2 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestRecentFirst(t *testing.T) {
	videos := createVideos()

	recent := RecentFirst(videos, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(recent))
	}
	if recent[0].ID != "v2" || recent[1].ID != "v3" {
		t.Errorf("unexpected order: %v, %v", recent[0].ID, recent[1].ID)
	}

	// The input slice order is untouched.
	if videos[0].ID != "v1" {
		t.Errorf("input slice was reordered: %v", videos[0].ID)
	}

	// A non-positive limit returns everything.
	if got := RecentFirst(videos, 0); len(got) != len(videos) {
		t.Errorf("expected all videos, got %d", len(got))
	}
}
