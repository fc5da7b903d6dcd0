package handlers

import (
	"context"

	"github.com/polkiloo/usersvc/internal/domain/model"
)

// UserFacade describes the user management capabilities required by handlers.
type UserFacade interface {
	CreateUser(ctx context.Context, name, email, password string) (*model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string) error
	DeleteUser(ctx context.Context, id int64) error
}

// AuthFacade describes credential verification used by the login handler.
type AuthFacade interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

// ServiceFacade aggregates the full set of operations used across handlers.
type ServiceFacade interface {
	UserFacade
	AuthFacade
}
