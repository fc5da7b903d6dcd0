package test

import (
	"context"

	domainErrors "github.com/polkiloo/usersvc/internal/domain/errors"
	"github.com/polkiloo/usersvc/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	CreateUserFn  func(context.Context, string, string, string) (*model.User, error)
	UserFn        func(context.Context, int64) (*model.User, error)
	UsersFn       func(context.Context) ([]model.User, error)
	SearchUsersFn func(context.Context, string) ([]model.User, error)
	UpdateUserFn  func(context.Context, int64, string, string) error
	DeleteUserFn  func(context.Context, int64) error
}

// CreateUser delegates to the override or returns a default record.
func (s UserFacadeStub) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email}, nil
}

// User returns the override result or a default record with the given id.
func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "stub", Email: "stub@example.com"}, nil
}

// Users returns predefined user list.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Name: "stub", Email: "stub@example.com"}}, nil
}

// SearchUsers returns the override result or an empty match set.
func (s UserFacadeStub) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	if s.SearchUsersFn != nil {
		return s.SearchUsersFn(ctx, query)
	}
	return []model.User{}, nil
}

// UpdateUser executes the configured update handler.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, name, email string) error {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, name, email)
	}
	return nil
}

// DeleteUser executes the configured delete handler.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// AuthFacadeStub simulates credential verification.
type AuthFacadeStub struct {
	AuthenticateFn func(context.Context, string, string) (*model.User, error)
}

// Authenticate delegates to the override or rejects uniformly.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return nil, domainErrors.ErrInvalidCredentials
}

// ServiceFacadeStub aggregates facade stubs for router level tests.
type ServiceFacadeStub struct {
	UserFacadeStub
	AuthFacadeStub
}
