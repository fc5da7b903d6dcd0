package app

import (
	"context"

	"github.com/polkiloo/usersvc/internal/domain/model"
	"github.com/polkiloo/usersvc/internal/usecase"
)

// ServiceFacade exposes the user management operations to the HTTP layer.
type ServiceFacade struct {
	users *usecase.UserUseCase
}

func NewServiceFacade(users *usecase.UserUseCase) *ServiceFacade {
	return &ServiceFacade{users: users}
}

func (f *ServiceFacade) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	return f.users.Create(ctx, name, email, password)
}

func (f *ServiceFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *ServiceFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *ServiceFacade) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	return f.users.SearchByName(ctx, query)
}

func (f *ServiceFacade) UpdateUser(ctx context.Context, id int64, name, email string) error {
	return f.users.Update(ctx, id, name, email)
}

func (f *ServiceFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *ServiceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	return f.users.Authenticate(ctx, email, password)
}
