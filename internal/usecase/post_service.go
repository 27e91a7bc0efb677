package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// PostService implements PostUsecase.
type PostService struct {
	store     *repository.Store
	integrity *Integrity
	logger    *zap.Logger
}

var _ PostUsecase = (*PostService)(nil)

func NewPostService(store *repository.Store, integrity *Integrity, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{store: store, integrity: integrity, logger: logger}
}

func (s *PostService) List(ctx context.Context) []entity.Post {
	return s.store.Posts.FindMany(ctx, repository.All())
}

func (s *PostService) GetByID(ctx context.Context, id string) (entity.Post, error) {
	return s.store.Posts.Get(ctx, id)
}

func (s *PostService) Create(ctx context.Context, input CreatePostInput) (entity.Post, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" || strings.TrimSpace(input.Title) == "" {
		return entity.Post{}, repository.Invalid("title and userId are required")
	}

	var created entity.Post
	err := s.integrity.referencing(func() error {
		if err := s.integrity.requireUser(ctx, userID); err != nil {
			return err
		}
		var err error
		created, err = s.store.Posts.Create(ctx, entity.Post{
			ID:      strings.TrimSpace(input.ID),
			Title:   input.Title,
			Content: input.Content,
			UserID:  userID,
		})
		return err
	})
	if err != nil {
		return entity.Post{}, err
	}

	s.logger.Debug("post created", zap.String("post_id", created.ID), zap.String("user_id", userID))
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id string, patch entity.PostPatch) (entity.Post, error) {
	if patch.IsEmpty() {
		return entity.Post{}, repository.Invalid("nothing to update")
	}

	var updated entity.Post
	err := s.integrity.referencing(func() error {
		if _, err := s.store.Posts.Get(ctx, id); err != nil {
			return err
		}
		if patch.UserID != nil {
			if err := s.integrity.requireUser(ctx, *patch.UserID); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.store.Posts.Change(ctx, id, patch)
		return err
	})
	if err != nil {
		return entity.Post{}, err
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id string) (entity.Post, error) {
	return s.store.Posts.Delete(ctx, id)
}
