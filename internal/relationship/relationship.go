// Package relationship holds the pure logic behind the coach/student link
// graph: request id composition, id normalization, and the set semantics used
// by the mirror lists. Does not need/use any Firebase connection.
package relationship

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/models"
)

// Store is the slice of the document store the join-request lifecycle needs.
// The repository implements it against Firestore.
type Store interface {
	// GetJoinRequest retrieves a join request by its composite ID.
	GetJoinRequest(id string) (*models.JoinRequest, error)
	// SetRequestStatus patches the status field of a join request.
	SetRequestStatus(id string, status models.RequestStatus) error
	// AddCoachToStudent appends the coach to the student's mirror list with
	// set semantics.
	AddCoachToStudent(studentID, coachID string) (*models.User, error)
	// AddStudentToCoach appends the student to the coach's mirror list with
	// set semantics.
	AddStudentToCoach(coachID, studentID string) (*models.User, error)
}

// Accept marks the request accepted and links both sides of the relationship.
// Three sequential writes against three documents; each step is idempotent,
// so a failed call can be safely retried.
func Accept(store Store, requestID string) (*models.JoinRequest, error) {
	request, err := store.GetJoinRequest(requestID)
	if err != nil {
		return nil, err
	}

	// Re-accepting is a no-op success so retries converge.
	if request.Status == models.RequestAccepted {
		return request, nil
	}

	if err := store.SetRequestStatus(request.ID, models.RequestAccepted); err != nil {
		return nil, fmt.Errorf("error accepting join request: %v", err)
	}
	request.Status = models.RequestAccepted

	// Mirror the relationship on both user documents.
	if _, err := store.AddCoachToStudent(request.StudentID, request.CoachID); err != nil {
		return nil, fmt.Errorf("request %v accepted but student update failed: %v", request.ID, err)
	}
	if _, err := store.AddStudentToCoach(request.CoachID, request.StudentID); err != nil {
		return nil, fmt.Errorf("request %v accepted but coach update failed: %v", request.ID, err)
	}

	return request, nil
}

// Reject marks the request rejected. No user document is touched.
func Reject(store Store, requestID string) (*models.JoinRequest, error) {
	request, err := store.GetJoinRequest(requestID)
	if err != nil {
		return nil, err
	}

	if err := store.SetRequestStatus(request.ID, models.RequestRejected); err != nil {
		return nil, fmt.Errorf("error rejecting join request: %v", err)
	}
	request.Status = models.RequestRejected

	return request, nil
}

// NormalizeID canonicalizes a user id (an email address) so that add and
// remove operations compare the same way regardless of casing drift between
// clients.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ComposeRequestID builds the historical {studentId}-{coachId}-{timestamp}
// join request id. The embedded ids are informational; lookups go through the
// explicit studentId/coachId document fields.
func ComposeRequestID(studentID, coachID string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", NormalizeID(studentID), NormalizeID(coachID), at.Unix())
}

// ParseRequestID splits a composite request id into its segments. Ids
// containing extra delimiters (emails with hyphens) cannot be split reliably,
// which is why the parsed values are only used to sanity-check the explicit
// fields.
func ParseRequestID(id string) (studentID, coachID string, at time.Time, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", "", time.Time{}, apperrors.InvalidRequestID
	}

	unix, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", "", time.Time{}, apperrors.InvalidRequestID
	}

	return parts[0], parts[1], time.Unix(unix, 0), nil
}

// AddID appends id to the list with set semantics. Mirrors the ArrayUnion the
// store performs, so handlers can shape a response without re-reading.
func AddID(list []string, id string) []string {
	id = NormalizeID(id)
	if Contains(list, id) {
		return list
	}
	return append(list, id)
}

// RemoveID removes every entry matching id under normalized comparison.
func RemoveID(list []string, id string) []string {
	id = NormalizeID(id)
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if NormalizeID(entry) == id {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Contains reports whether the list holds id under normalized comparison.
func Contains(list []string, id string) bool {
	id = NormalizeID(id)
	for _, entry := range list {
		if NormalizeID(entry) == id {
			return true
		}
	}
	return false
}
