package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// UserRepository persists the users collection.
type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return loadAll[models.User](ctx, r.store, store.Users)
}

// FindByUsernameAndRole resolves a login identity. Both fields must
// match; a valid username with the wrong role is a miss.
func (r *UserRepository) FindByUsernameAndRole(ctx context.Context, username string, role models.UserRole) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Role == role {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return saveAll(ctx, r.store, store.Users, users)
}
