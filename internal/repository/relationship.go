package repository

import (
	"fmt"
	"time"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/firebase"
	"becomebetter/internal/models"
	"becomebetter/internal/relationship"

	"cloud.google.com/go/firestore"
	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// CreateJoinRequest saves a new pending join request. The document keeps the
// historical composite ID, with the student and coach ids stored as explicit
// fields for lookups.
func (fr *FirebaseRepository) CreateJoinRequest(c *models.SendJoinRequestRequest) (*models.JoinRequest, error) {
	request := &models.JoinRequest{
		StudentID: relationship.NormalizeID(c.StudentID),
		CoachID:   relationship.NormalizeID(c.CoachID),
		Status:    models.RequestPending,
		CreatedAt: time.Now(),
	}
	request.ID = relationship.ComposeRequestID(request.StudentID, request.CoachID, request.CreatedAt)

	_, err := fr.firestoreClient.Collection(models.FirestoreRequestsCollection).Doc(request.ID).Set(firebase.Context, map[string]interface{}{
		"id":        request.ID,
		"studentId": request.StudentID,
		"coachId":   request.CoachID,
		"status":    request.Status,
		"timestamp": request.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating join request: %v", err)
	}

	return request, nil
}

// GetJoinRequest retrieves a join request by its composite ID.
func (fr *FirebaseRepository) GetJoinRequest(id string) (*models.JoinRequest, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreRequestsCollection).Doc(id).Get(firebase.Context)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.RequestNotFoundError
		}
		return nil, fmt.Errorf("error getting join request: %v", err)
	}

	var request models.JoinRequest
	if err := mapstructure.Decode(doc.Data(), &request); err != nil {
		return nil, err
	}
	request.ID = doc.Ref.ID

	return &request, nil
}

// SetRequestStatus patches the status field of a join request.
func (fr *FirebaseRepository) SetRequestStatus(id string, status models.RequestStatus) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreRequestsCollection).Doc(id).Update(firebase.Context, []firestore.Update{
		{
			Path:  "status",
			Value: status,
		},
	})
	return err
}

// AcceptJoinRequest marks the request accepted and links both sides of the
// relationship. The orchestration lives in the relationship package; this
// repository supplies the Firestore-backed store. ArrayUnion is atomic at the
// field level, so concurrent accepts touching the same student cannot lose
// each other's update.
func (fr *FirebaseRepository) AcceptJoinRequest(requestID string) (*models.JoinRequest, error) {
	return relationship.Accept(fr, requestID)
}

// RejectJoinRequest marks the request rejected. No user document is touched.
func (fr *FirebaseRepository) RejectJoinRequest(requestID string) (*models.JoinRequest, error) {
	return relationship.Reject(fr, requestID)
}

// AddCoachToStudent appends the coach to the student's mirror list with set
// semantics and returns the updated student document.
func (fr *FirebaseRepository) AddCoachToStudent(studentID, coachID string) (*models.User, error) {
	return fr.patchMirrorList(studentID, "coaches", firestore.ArrayUnion(relationship.NormalizeID(coachID)))
}

// AddStudentToCoach appends the student to the coach's mirror list with set
// semantics and returns the updated coach document.
func (fr *FirebaseRepository) AddStudentToCoach(coachID, studentID string) (*models.User, error) {
	return fr.patchMirrorList(coachID, "students", firestore.ArrayUnion(relationship.NormalizeID(studentID)))
}

// RemoveCoachFromStudent removes the coach from the student's mirror list.
// The coach's own list is not touched; callers wanting full unlinking invoke
// both removal operations.
func (fr *FirebaseRepository) RemoveCoachFromStudent(studentID, coachID string) (*models.User, error) {
	return fr.patchMirrorList(studentID, "coaches", firestore.ArrayRemove(relationship.NormalizeID(coachID)))
}

// RemoveStudentFromCoach removes the student from the coach's mirror list.
func (fr *FirebaseRepository) RemoveStudentFromCoach(coachID, studentID string) (*models.User, error) {
	return fr.patchMirrorList(coachID, "students", firestore.ArrayRemove(relationship.NormalizeID(studentID)))
}

// patchMirrorList applies one field-level list patch to a user document and
// re-reads the document so the caller can return the updated state.
func (fr *FirebaseRepository) patchMirrorList(userID, path string, value interface{}) (*models.User, error) {
	_, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(relationship.NormalizeID(userID)).Update(firebase.Context, []firestore.Update{
		{
			Path:  path,
			Value: value,
		},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.UserNotFoundError
		}
		return nil, fmt.Errorf("error updating %v for user %v: %v", path, userID, err)
	}

	return fr.GetUserByID(userID)
}

// GetPendingRequestsForCoach returns every pending join request addressed to
// the coach. Lookup goes through the explicit coachId field, not the
// composite ID.
func (fr *FirebaseRepository) GetPendingRequestsForCoach(coachID string) ([]*models.JoinRequest, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreRequestsCollection).
		Where("coachId", "==", relationship.NormalizeID(coachID)).
		Where("status", "==", string(models.RequestPending)).
		Documents(firebase.Context)

	return decodeRequests(iter)
}

// GetRequestsByStudent returns every join request the student has sent,
// regardless of status.
func (fr *FirebaseRepository) GetRequestsByStudent(studentID string) ([]*models.JoinRequest, error) {
	iter := fr.firestoreClient.Collection(models.FirestoreRequestsCollection).
		Where("studentId", "==", relationship.NormalizeID(studentID)).
		Documents(firebase.Context)

	return decodeRequests(iter)
}

func decodeRequests(iter *firestore.DocumentIterator) ([]*models.JoinRequest, error) {
	requests := make([]*models.JoinRequest, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			glog.Warningf("error iterating join requests: %v\n", err)
			return nil, err
		}

		var request models.JoinRequest
		if err := mapstructure.Decode(doc.Data(), &request); err != nil {
			return nil, err
		}
		request.ID = doc.Ref.ID
		requests = append(requests, &request)
	}

	return requests, nil
}
