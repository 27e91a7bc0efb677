package usecase

import (
	"context"
	"strings"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// MemberTypeService implements MemberTypeUsecase.
type MemberTypeService struct {
	store     *repository.Store
	integrity *Integrity
}

var _ MemberTypeUsecase = (*MemberTypeService)(nil)

func NewMemberTypeService(store *repository.Store, integrity *Integrity) *MemberTypeService {
	return &MemberTypeService{store: store, integrity: integrity}
}

func (s *MemberTypeService) List(ctx context.Context) []entity.MemberType {
	return s.store.MemberTypes.FindMany(ctx, repository.All())
}

func (s *MemberTypeService) GetByID(ctx context.Context, id string) (entity.MemberType, error) {
	return s.store.MemberTypes.Get(ctx, id)
}

func (s *MemberTypeService) Create(ctx context.Context, input CreateMemberTypeInput) (entity.MemberType, error) {
	if input.Discount < 0 || input.MonthPostsLimit < 0 {
		return entity.MemberType{}, repository.Invalid("discount and monthPostsLimit must not be negative")
	}
	return s.store.MemberTypes.Create(ctx, entity.MemberType{
		ID:              strings.TrimSpace(input.ID),
		Discount:        input.Discount,
		MonthPostsLimit: input.MonthPostsLimit,
	})
}

func (s *MemberTypeService) Update(ctx context.Context, id string, patch entity.MemberTypePatch) (entity.MemberType, error) {
	if patch.IsEmpty() {
		return entity.MemberType{}, repository.Invalid("nothing to update")
	}
	if (patch.Discount != nil && *patch.Discount < 0) || (patch.MonthPostsLimit != nil && *patch.MonthPostsLimit < 0) {
		return entity.MemberType{}, repository.Invalid("discount and monthPostsLimit must not be negative")
	}
	return s.store.MemberTypes.Change(ctx, id, patch)
}

func (s *MemberTypeService) Delete(ctx context.Context, id string) (entity.MemberType, error) {
	return s.integrity.DeleteMemberType(ctx, id)
}
