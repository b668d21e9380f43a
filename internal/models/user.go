package models

import "time"

const (
	FirestoreUsersCollection = "users"
)

type Role string

const (
	RoleCoach  Role = "Coach"
	RolePlayer Role = "Player"
)

// User represents a registered user. The document ID equals the (normalized)
// email address.
//
// Coaches and Players share one document shape: Players carry the Coaches
// mirror list, Coaches carry the Students mirror list. An accepted join
// request appears on both sides.
type User struct {
	ID                string   `json:"id" mapstructure:"id"`
	Email             string   `json:"email" mapstructure:"email"`
	Name              string   `json:"name" mapstructure:"name"`
	Role              Role     `json:"role" mapstructure:"role"`
	Coaches           []string `json:"coaches" mapstructure:"coaches"`
	Students          []string `json:"students" mapstructure:"students"`
	PushTokens        []string `json:"pushTokens,omitempty" mapstructure:"pushTokens"`
	ProfilePictureURL string   `json:"profilePictureUrl,omitempty" mapstructure:"profilePictureUrl"`

	// PasswordHash is the bcrypt hash of the user's password. Never serialized
	// to clients.
	PasswordHash string `json:"-" mapstructure:"passwordHash"`

	// PushToken is the legacy single-token field some older clients still
	// write. DeliveryTokens folds it into PushTokens.
	PushToken string `json:"-" mapstructure:"pushToken"`

	CreatedAt time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// DeliveryTokens returns the deduplicated set of push delivery tokens for the
// user, folding in the legacy single-token field.
func (u *User) DeliveryTokens() []string {
	tokens := make([]string, 0, len(u.PushTokens)+1)
	seen := make(map[string]bool)

	candidates := u.PushTokens
	if u.PushToken != "" {
		candidates = append(append([]string{}, candidates...), u.PushToken)
	}
	for _, token := range candidates {
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}

// CreateUserRequest is the parameter struct for the CreateUser function.
type CreateUserRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	Name              string `json:"name" validate:"required"`
	Role              Role   `json:"role" validate:"required,oneof=Coach Player"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// SignInRequest is the parameter struct for the sign-in handlers.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the parameter struct for the UpdateUser function.
type UpdateUserRequest struct {
	// Will be set from context
	UserID            string `json:",omitempty"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// SavePushTokenRequest is the parameter struct for the SavePushToken function.
type SavePushTokenRequest struct {
	UserID string `json:"userId" validate:"required"`
	Token  string `json:"token" validate:"required"`
}
