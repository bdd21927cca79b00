package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserRole represents the role of the caller.
type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleAgency    UserRole = "agency"
)

// IsValid reports whether the role is one the feed engine serves.
func (r UserRole) IsValid() bool {
	return r == UserRoleCandidate || r == UserRoleAgency
}

// UserContext represents the authenticated caller for a feed request. It is
// resolved by the identity middleware from gateway headers or a backend token.
type UserContext struct {
	UserID uuid.UUID `json:"user_id"`
	Role   UserRole  `json:"role"`
	Email  string    `json:"email,omitempty"`
}

// IsValid checks that the context carries a real identity and a known role.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil && uc.Role.IsValid()
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext extracts the caller identity placed by the identity
// middleware.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}
	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}
	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
