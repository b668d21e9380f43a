package relationship

import (
	"errors"
	"testing"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/models"
)

// fakeStore is an in-memory Store that counts writes so tests can assert
// which documents an operation touched.
type fakeStore struct {
	requests     map[string]*models.JoinRequest
	users        map[string]*models.User
	statusWrites int
	listWrites   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests: map[string]*models.JoinRequest{
			"s1@mail.com-c1@mail.com-1700000000": {
				ID:        "s1@mail.com-c1@mail.com-1700000000",
				StudentID: "s1@mail.com",
				CoachID:   "c1@mail.com",
				Status:    models.RequestPending,
			},
		},
		users: map[string]*models.User{
			"s1@mail.com": {ID: "s1@mail.com", Role: models.RolePlayer},
			"c1@mail.com": {ID: "c1@mail.com", Role: models.RoleCoach},
		},
	}
}

func (f *fakeStore) GetJoinRequest(id string) (*models.JoinRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.RequestNotFoundError
	}
	copied := *request
	return &copied, nil
}

func (f *fakeStore) SetRequestStatus(id string, status models.RequestStatus) error {
	request, ok := f.requests[id]
	if !ok {
		return apperrors.RequestNotFoundError
	}
	request.Status = status
	f.statusWrites++
	return nil
}

func (f *fakeStore) AddCoachToStudent(studentID, coachID string) (*models.User, error) {
	user, ok := f.users[NormalizeID(studentID)]
	if !ok {
		return nil, apperrors.UserNotFoundError
	}
	user.Coaches = AddID(user.Coaches, coachID)
	f.listWrites++
	return user, nil
}

func (f *fakeStore) AddStudentToCoach(coachID, studentID string) (*models.User, error) {
	user, ok := f.users[NormalizeID(coachID)]
	if !ok {
		return nil, apperrors.UserNotFoundError
	}
	user.Students = AddID(user.Students, studentID)
	f.listWrites++
	return user, nil
}

func TestAcceptLinksBothSides(t *testing.T) {
	store := newFakeStore()

	request, err := Accept(store, "s1@mail.com-c1@mail.com-1700000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != models.RequestAccepted {
		t.Errorf("expected status %v, got %v", models.RequestAccepted, request.Status)
	}
	if store.requests[request.ID].Status != models.RequestAccepted {
		t.Errorf("stored request status not updated: %v", store.requests[request.ID].Status)
	}
	if !Contains(store.users["s1@mail.com"].Coaches, "c1@mail.com") {
		t.Errorf("coach missing from student mirror list: %v", store.users["s1@mail.com"].Coaches)
	}
	if !Contains(store.users["c1@mail.com"].Students, "s1@mail.com") {
		t.Errorf("student missing from coach mirror list: %v", store.users["c1@mail.com"].Students)
	}
}

func TestAcceptAlreadyAcceptedIsNoOp(t *testing.T) {
	store := newFakeStore()
	store.requests["s1@mail.com-c1@mail.com-1700000000"].Status = models.RequestAccepted

	request, err := Accept(store, "s1@mail.com-c1@mail.com-1700000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != models.RequestAccepted {
		t.Errorf("expected status %v, got %v", models.RequestAccepted, request.Status)
	}
	if store.statusWrites != 0 || store.listWrites != 0 {
		t.Errorf("expected no writes, got %v status and %v list writes", store.statusWrites, store.listWrites)
	}
}

func TestAcceptUnknownRequestMutatesNothing(t *testing.T) {
	store := newFakeStore()

	_, err := Accept(store, "nobody@mail.com-c1@mail.com-1700000000")
	if !errors.Is(err, apperrors.RequestNotFoundError) {
		t.Fatalf("expected RequestNotFoundError, got %v", err)
	}
	if store.statusWrites != 0 || store.listWrites != 0 {
		t.Errorf("expected no writes, got %v status and %v list writes", store.statusWrites, store.listWrites)
	}
	if len(store.users["s1@mail.com"].Coaches) != 0 || len(store.users["c1@mail.com"].Students) != 0 {
		t.Error("mirror lists changed on a failed accept")
	}
}

func TestRejectTouchesOnlyTheRequest(t *testing.T) {
	store := newFakeStore()

	request, err := Reject(store, "s1@mail.com-c1@mail.com-1700000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != models.RequestRejected {
		t.Errorf("expected status %v, got %v", models.RequestRejected, request.Status)
	}
	if store.listWrites != 0 {
		t.Errorf("expected no mirror list writes, got %v", store.listWrites)
	}
}
