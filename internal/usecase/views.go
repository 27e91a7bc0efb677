package usecase

import (
	"fmt"
	"strings"

	"github.com/wichananm65/social-backend/internal/domain/entity"
)

// UserWithAllData is a user with its profile, posts and member types.
// Profile is nil and MemberTypes is empty when the user has no profile.
type UserWithAllData struct {
	User        entity.User         `json:"user"`
	Profile     *entity.Profile     `json:"profile"`
	Posts       []entity.Post       `json:"posts"`
	MemberTypes []entity.MemberType `json:"memberTypes"`
}

// UserWithSubscribers is a user with its posts and the users it follows.
type UserWithSubscribers struct {
	User             entity.User   `json:"user"`
	Posts            []entity.Post `json:"posts"`
	SubscribedToUser []entity.User `json:"subscribedToUser"`
}

// SubscriptionNode is one level of a subscription closure.
type SubscriptionNode struct {
	User         entity.User        `json:"user"`
	SubscribedTo []SubscriptionNode `json:"subscribedTo"`
}

// UserWithFollowers is a user with its profile and the users following it.
type UserWithFollowers struct {
	User      entity.User     `json:"user"`
	Profile   *entity.Profile `json:"profile"`
	Followers []entity.User   `json:"userSubscribedTo"`
}

// Everything holds the full content of all four collections.
type Everything struct {
	Users       []entity.User       `json:"users"`
	Profiles    []entity.Profile    `json:"profiles"`
	Posts       []entity.Post       `json:"posts"`
	MemberTypes []entity.MemberType `json:"memberTypes"`
}

// CompositeIDs names one record of each kind.
type CompositeIDs struct {
	UserID       string `json:"userId"`
	ProfileID    string `json:"profileId"`
	PostID       string `json:"postId"`
	MemberTypeID string `json:"memberTypeId"`
}

// Composite is the result of a lookup by CompositeIDs. Under the partial
// policy, entries that were not found are nil and named in NotFound.
type Composite struct {
	User       *entity.User       `json:"user"`
	Profile    *entity.Profile    `json:"profile"`
	Post       *entity.Post       `json:"post"`
	MemberType *entity.MemberType `json:"memberType"`
	NotFound   []string           `json:"notFound"`
}

// CompositePolicy decides what a composite lookup does when some of its
// sub-lookups miss.
type CompositePolicy string

const (
	CompositePartial CompositePolicy = "partial"
	CompositeStrict  CompositePolicy = "strict"
)

func ParseCompositePolicy(s string) (CompositePolicy, error) {
	switch p := CompositePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case CompositePartial, CompositeStrict:
		return p, nil
	case "":
		return CompositePartial, nil
	}
	return "", fmt.Errorf("unknown composite policy %q (want %q or %q)", s, CompositePartial, CompositeStrict)
}
