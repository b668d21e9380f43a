package repository

import (
	"fmt"
	"time"

	"becomebetter/internal/apperrors"
	"becomebetter/internal/firebase"
	"becomebetter/internal/models"
	"becomebetter/internal/relationship"

	"cloud.google.com/go/firestore"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

func (fr *FirebaseRepository) initializeUsersListener() {
	handleDoc := func(doc *firestore.DocumentSnapshot) error {
		fr.usersLock.Lock()
		defer fr.usersLock.Unlock()

		var user models.User
		err := mapstructure.Decode(doc.Data(), &user)
		if err != nil {
			return err
		}
		user.ID = doc.Ref.ID
		fr.users[doc.Ref.ID] = &user

		return nil
	}

	done := make(chan bool)
	go fr.createCollectionInitializer(models.FirestoreUsersCollection, &done, handleDoc)
	<-done
}

// CreateUser creates a user document keyed by the normalized email address.
// The password arrives pre-hashed; this layer never sees plaintext.
func (fr *FirebaseRepository) CreateUser(c *models.CreateUserRequest, passwordHash string) (*models.User, error) {
	id := relationship.NormalizeID(c.Email)

	// Reject duplicate sign-ups.
	if _, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(id).Get(firebase.Context); err == nil {
		return nil, apperrors.EmailExistsError
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("error checking for existing user: %v", err)
	}

	user := &models.User{
		ID:                id,
		Email:             id,
		Name:              c.Name,
		Role:              c.Role,
		Coaches:           []string{},
		Students:          []string{},
		ProfilePictureURL: c.ProfilePictureURL,
		PasswordHash:      passwordHash,
		CreatedAt:         time.Now(),
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(id).Set(firebase.Context, map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"name":              user.Name,
		"role":              user.Role,
		"coaches":           user.Coaches,
		"students":          user.Students,
		"pushTokens":        []string{},
		"profilePictureUrl": user.ProfilePictureURL,
		"passwordHash":      user.PasswordHash,
		"createdAt":         user.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// GetUserByID retrieves the User associated with the given ID.
func (fr *FirebaseRepository) GetUserByID(id string) (*models.User, error) {
	doc, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(relationship.NormalizeID(id)).Get(firebase.Context)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.UserNotFoundError
		}
		return nil, fmt.Errorf("error getting user: %v", err)
	}

	var user models.User
	if err := mapstructure.Decode(doc.Data(), &user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

// GetUserByEmail retrieves the User associated with the given email address.
// The document ID equals the normalized email, but imported documents may be
// keyed by something else while still carrying the normalized email field, so
// a field query backs up the direct lookup.
func (fr *FirebaseRepository) GetUserByEmail(email string) (*models.User, error) {
	user, err := fr.GetUserByID(email)
	if err == nil {
		return user, nil
	}
	if err != apperrors.UserNotFoundError {
		return nil, err
	}

	iter := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Where("email", "==", relationship.NormalizeID(email)).Documents(firebase.Context)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, apperrors.UserNotFoundError
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user by email: %v", err)
	}

	var found models.User
	if err := mapstructure.Decode(doc.Data(), &found); err != nil {
		return nil, err
	}
	found.ID = doc.Ref.ID

	return &found, nil
}

func (fr *FirebaseRepository) UpdateUser(c *models.UpdateUserRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(relationship.NormalizeID(c.UserID)).Update(firebase.Context, []firestore.Update{
		{
			Path:  "name",
			Value: c.Name,
		},
		{
			Path:  "profilePictureUrl",
			Value: c.ProfilePictureURL,
		},
	})
	if isNotFound(err) {
		return apperrors.UserNotFoundError
	}

	return err
}

// SavePushToken registers a push delivery token for the user. ArrayUnion
// keeps the token set free of duplicates.
func (fr *FirebaseRepository) SavePushToken(c *models.SavePushTokenRequest) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreUsersCollection).Doc(relationship.NormalizeID(c.UserID)).Update(firebase.Context, []firestore.Update{
		{
			Path:  "pushTokens",
			Value: firestore.ArrayUnion(c.Token),
		},
	})
	if isNotFound(err) {
		return apperrors.UserNotFoundError
	}

	return err
}

// GetUserCount returns the number of registered users from the warm cache.
func (fr *FirebaseRepository) GetUserCount() int {
	fr.usersLock.RLock()
	defer fr.usersLock.RUnlock()
	return len(fr.users)
}

// ListUsersByRole returns all cached users with the given role.
func (fr *FirebaseRepository) ListUsersByRole(role models.Role) []*models.User {
	fr.usersLock.RLock()
	defer fr.usersLock.RUnlock()

	var users []*models.User
	for _, user := range fr.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users
}
