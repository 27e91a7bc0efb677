package inmemory

import (
	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*Collection[entity.User])(nil)
	_ repository.ProfileRepository    = (*Collection[entity.Profile])(nil)
	_ repository.PostRepository       = (*Collection[entity.Post])(nil)
	_ repository.MemberTypeRepository = (*Collection[entity.MemberType])(nil)
)

// NewStore builds an empty store with one collection per entity kind.
func NewStore() *repository.Store {
	return &repository.Store{
		Users:       NewCollection[entity.User]("user"),
		Profiles:    NewCollection[entity.Profile]("profile"),
		Posts:       NewCollection[entity.Post]("post"),
		MemberTypes: NewCollection[entity.MemberType]("member type"),
	}
}
