package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/usersvc/internal/domain/errors"
	"github.com/polkiloo/usersvc/internal/domain/model"
	"github.com/polkiloo/usersvc/internal/domain/repository"
	pkgAuth "github.com/polkiloo/usersvc/internal/pkg/auth"
)

// UserUseCase handles account lifecycle and credential verification.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// Create registers a new user with a hashed password and returns the record.
// The duplicate-email probe here is advisory: the unique constraint on the
// users table is what actually rejects a concurrent duplicate insert.
func (u *UserUseCase) Create(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domainErrors.ErrEmptyField
	}

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, name, email, hash)
}

// Get fetches a user by identifier.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// List returns all users in insertion order.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// SearchByName returns users whose name contains the query as a substring.
func (u *UserUseCase) SearchByName(ctx context.Context, query string) ([]model.User, error) {
	if query == "" {
		return nil, domainErrors.ErrEmptyField
	}
	return u.users.SearchByName(ctx, query)
}

// Update overwrites name and email of the record. The password is not
// touched by this operation.
func (u *UserUseCase) Update(ctx context.Context, id int64, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return domainErrors.ErrEmptyField
	}
	return u.users.Update(ctx, id, name, email)
}

// Delete removes the record permanently.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

// Authenticate verifies credentials. Unknown email and wrong password both
// yield ErrInvalidCredentials so callers cannot enumerate accounts.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr, nil
}
