package persistence

import (
	"context"

	"github.com/shopeasy/backend/internal/domain/identity"
	"github.com/shopeasy/backend/internal/domain/shared"
)

// FileUserRepository is a flat-file implementation of identity.UserRepository
type FileUserRepository struct {
	col *Collection[identity.User]
	seq *sequence
}

// NewFileUserRepository opens the users collection under dir
func NewFileUserRepository(dir string) (*FileUserRepository, error) {
	col, err := OpenCollection[identity.User](dir, UsersFile)
	if err != nil {
		return nil, err
	}

	users, err := col.ReadAll()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	return &FileUserRepository{col: col, seq: newSequence(maxID)}, nil
}

// FindByID finds a user by ID
func (r *FileUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	users, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindByEmail finds a user by exact email match
func (r *FileUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	users, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Save persists a new user, assigning its ID.
// The email uniqueness check happens inside the same read-modify-write cycle
// as the append, so two racing registrations cannot both slip through.
func (r *FileUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.col.Update(func(users []identity.User) ([]identity.User, error) {
		for i := range users {
			if users[i].Email == user.Email {
				return nil, shared.ErrDuplicateEmail
			}
		}
		user.ID = r.seq.Next()
		return append(users, *user), nil
	})
}

// Count returns the number of registered users
func (r *FileUserRepository) Count(ctx context.Context) (int, error) {
	users, err := r.col.ReadAll()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
