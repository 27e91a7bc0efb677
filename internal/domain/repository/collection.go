package repository

import (
	"context"

	"github.com/wichananm65/social-backend/internal/domain/entity"
)

// Record is the contract every stored entity satisfies. Implementations are
// value types; Clone must return a copy that shares no mutable state.
type Record[T any] interface {
	EntityID() string
	WithID(id string) T
	Field(key string) (any, bool)
	Clone() T
	Normalize() T
}

// Patch merges a partial update into a record. Fields the patch does not
// carry keep their prior value.
type Patch[T any] interface {
	Apply(T) T
}

// PatchFunc adapts a plain function to Patch.
type PatchFunc[T any] func(T) T

func (f PatchFunc[T]) Apply(v T) T { return f(v) }

// Collection defines persistence behavior for one entity kind.
type Collection[T any] interface {
	Create(ctx context.Context, candidate T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	FindOne(ctx context.Context, p Predicate) (T, bool)
	FindMany(ctx context.Context, p Predicate) []T
	Change(ctx context.Context, id string, patch Patch[T]) (T, error)
	Delete(ctx context.Context, id string) (T, error)
}

type (
	UserRepository       = Collection[entity.User]
	ProfileRepository    = Collection[entity.Profile]
	PostRepository       = Collection[entity.Post]
	MemberTypeRepository = Collection[entity.MemberType]
)

// Store groups the four collections. It is built once at startup and handed
// to the use cases explicitly.
type Store struct {
	Users       UserRepository
	Profiles    ProfileRepository
	Posts       PostRepository
	MemberTypes MemberTypeRepository
}
