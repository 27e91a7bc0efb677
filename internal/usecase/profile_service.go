package usecase

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// ProfileService implements ProfileUsecase. A user owns at most one profile.
type ProfileService struct {
	store     *repository.Store
	integrity *Integrity
	logger    *zap.Logger

	// serializes the one-profile-per-user check with the insert
	createMu sync.Mutex
}

var _ ProfileUsecase = (*ProfileService)(nil)

func NewProfileService(store *repository.Store, integrity *Integrity, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{store: store, integrity: integrity, logger: logger}
}

func (s *ProfileService) List(ctx context.Context) []entity.Profile {
	return s.store.Profiles.FindMany(ctx, repository.All())
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (entity.Profile, error) {
	return s.store.Profiles.Get(ctx, id)
}

func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (entity.Profile, error) {
	userID := strings.TrimSpace(input.UserID)
	memberTypeID := strings.TrimSpace(input.MemberTypeID)
	if userID == "" || memberTypeID == "" {
		return entity.Profile{}, repository.Invalid("userId and memberTypeId are required")
	}

	profile := entity.Profile{
		ID:           strings.TrimSpace(input.ID),
		Avatar:       input.Avatar,
		Sex:          input.Sex,
		Birthday:     input.Birthday,
		Country:      input.Country,
		Street:       input.Street,
		City:         input.City,
		MemberTypeID: memberTypeID,
		UserID:       userID,
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	var created entity.Profile
	err := s.integrity.referencing(func() error {
		if err := s.integrity.requireUser(ctx, userID); err != nil {
			return err
		}
		if err := s.integrity.requireMemberType(ctx, memberTypeID); err != nil {
			return err
		}
		if existing, ok := s.store.Profiles.FindOne(ctx, repository.Equals("userId", userID)); ok {
			if existing.MemberTypeID == memberTypeID {
				return repository.Invalid("user %q already has a %q profile", userID, memberTypeID)
			}
			return repository.Invalid("user %q already has a profile", userID)
		}
		var err error
		created, err = s.store.Profiles.Create(ctx, profile)
		return err
	})
	if err != nil {
		return entity.Profile{}, err
	}

	s.logger.Debug("profile created", zap.String("profile_id", created.ID), zap.String("user_id", userID))
	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, id string, patch entity.ProfilePatch) (entity.Profile, error) {
	if patch.IsEmpty() {
		return entity.Profile{}, repository.Invalid("nothing to update")
	}

	var updated entity.Profile
	err := s.integrity.referencing(func() error {
		if _, err := s.store.Profiles.Get(ctx, id); err != nil {
			return err
		}
		if patch.MemberTypeID != nil {
			if err := s.integrity.requireMemberType(ctx, *patch.MemberTypeID); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.store.Profiles.Change(ctx, id, patch)
		return err
	})
	if err != nil {
		return entity.Profile{}, err
	}
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, id string) (entity.Profile, error) {
	return s.store.Profiles.Delete(ctx, id)
}
