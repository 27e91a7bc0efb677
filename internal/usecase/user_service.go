package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// UserService implements UserUsecase on top of the store and the integrity
// layer.
type UserService struct {
	store     *repository.Store
	integrity *Integrity
	logger    *zap.Logger
}

var _ UserUsecase = (*UserService)(nil)

func NewUserService(store *repository.Store, integrity *Integrity, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: store, integrity: integrity, logger: logger}
}

func (s *UserService) List(ctx context.Context) []entity.User {
	return s.store.Users.FindMany(ctx, repository.All())
}

func (s *UserService) GetByID(ctx context.Context, id string) (entity.User, error) {
	return s.store.Users.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (entity.User, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	if first == "" || last == "" || email == "" {
		return entity.User{}, repository.Invalid("firstName, lastName and email are required")
	}

	user := entity.User{
		ID:                  strings.TrimSpace(input.ID),
		FirstName:           first,
		LastName:            last,
		Email:               email,
		SubscribedToUserIDs: input.SubscribedToUserIDs,
	}.Normalize()

	var created entity.User
	err := s.integrity.referencing(func() error {
		if err := s.integrity.requireUsers(ctx, user.SubscribedToUserIDs); err != nil {
			return err
		}
		var err error
		created, err = s.store.Users.Create(ctx, user)
		return err
	})
	if err != nil {
		return entity.User{}, err
	}

	s.logger.Debug("user created", zap.String("user_id", created.ID))
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch entity.UserPatch) (entity.User, error) {
	if patch.IsEmpty() {
		return entity.User{}, repository.Invalid("nothing to update")
	}

	var updated entity.User
	err := s.integrity.referencing(func() error {
		if _, err := s.store.Users.Get(ctx, id); err != nil {
			return err
		}
		if patch.SubscribedToUserIDs != nil {
			if err := s.integrity.requireUsers(ctx, *patch.SubscribedToUserIDs); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.store.Users.Change(ctx, id, patch)
		return err
	})
	if err != nil {
		return entity.User{}, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (entity.User, error) {
	return s.integrity.DeleteUser(ctx, id)
}

func (s *UserService) Subscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error) {
	return s.integrity.Subscribe(ctx, subscriberID, targetID)
}

func (s *UserService) Unsubscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error) {
	return s.integrity.Unsubscribe(ctx, subscriberID, targetID)
}
