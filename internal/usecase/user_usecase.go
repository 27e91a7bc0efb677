package usecase

import (
	"context"

	"github.com/wichananm65/social-backend/internal/domain/entity"
)

// UserUsecase exposes application-level operations for User.
type UserUsecase interface {
	List(ctx context.Context) []entity.User
	GetByID(ctx context.Context, id string) (entity.User, error)
	Create(ctx context.Context, input CreateUserInput) (entity.User, error)
	Update(ctx context.Context, id string, patch entity.UserPatch) (entity.User, error)
	Delete(ctx context.Context, id string) (entity.User, error)
	Subscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error)
	Unsubscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error)
}

// CreateUserInput carries data required to create a user. ID is optional.
type CreateUserInput struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

// ProfileUsecase exposes application-level operations for Profile.
type ProfileUsecase interface {
	List(ctx context.Context) []entity.Profile
	GetByID(ctx context.Context, id string) (entity.Profile, error)
	Create(ctx context.Context, input CreateProfileInput) (entity.Profile, error)
	Update(ctx context.Context, id string, patch entity.ProfilePatch) (entity.Profile, error)
	Delete(ctx context.Context, id string) (entity.Profile, error)
}

type CreateProfileInput struct {
	ID           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int    `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeID string `json:"memberTypeId"`
	UserID       string `json:"userId"`
}

// PostUsecase exposes application-level operations for Post.
type PostUsecase interface {
	List(ctx context.Context) []entity.Post
	GetByID(ctx context.Context, id string) (entity.Post, error)
	Create(ctx context.Context, input CreatePostInput) (entity.Post, error)
	Update(ctx context.Context, id string, patch entity.PostPatch) (entity.Post, error)
	Delete(ctx context.Context, id string) (entity.Post, error)
}

type CreatePostInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// MemberTypeUsecase exposes application-level operations for MemberType.
type MemberTypeUsecase interface {
	List(ctx context.Context) []entity.MemberType
	GetByID(ctx context.Context, id string) (entity.MemberType, error)
	Create(ctx context.Context, input CreateMemberTypeInput) (entity.MemberType, error)
	Update(ctx context.Context, id string, patch entity.MemberTypePatch) (entity.MemberType, error)
	Delete(ctx context.Context, id string) (entity.MemberType, error)
}

type CreateMemberTypeInput struct {
	ID              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// AggregateUsecase exposes the read-only nested views.
type AggregateUsecase interface {
	UserWithAllData(ctx context.Context, id string) (UserWithAllData, error)
	AllUsersWithAllData(ctx context.Context) ([]UserWithAllData, error)
	UserWithSubscribers(ctx context.Context, id string) (UserWithSubscribers, error)
	UserSubscriptionClosure(ctx context.Context, id string, depth int) (SubscriptionNode, error)
	UsersWithSubscriptionClosure(ctx context.Context, depth int) ([]SubscriptionNode, error)
	UsersWithFollowers(ctx context.Context) []UserWithFollowers
	Everything(ctx context.Context) Everything
	CompositeByID(ctx context.Context, ids CompositeIDs) (Composite, error)
}
