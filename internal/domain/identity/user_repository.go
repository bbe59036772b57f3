package identity

import "context"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save persists a new user, assigning its ID
	Save(ctx context.Context, user *User) error

	// Count returns the number of registered users
	Count(ctx context.Context) (int, error)
}
