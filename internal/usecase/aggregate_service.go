package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// fanOutLimit bounds concurrent per-user lookups in list aggregates.
const fanOutLimit = 8

// DefaultMaxSubscriptionDepth caps closure expansion when no limit is
// configured. Each level can multiply the result size by the fan-out.
const DefaultMaxSubscriptionDepth = 4

// AggregateService composes single-entity reads into nested views. It never
// writes to the store.
type AggregateService struct {
	store    *repository.Store
	policy   CompositePolicy
	maxDepth int
	logger   *zap.Logger
}

var _ AggregateUsecase = (*AggregateService)(nil)

// NewAggregateService builds the read-side views. A maxDepth of zero or less
// selects DefaultMaxSubscriptionDepth.
func NewAggregateService(store *repository.Store, policy CompositePolicy, maxDepth int, logger *zap.Logger) *AggregateService {
	if policy == "" {
		policy = CompositePartial
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxSubscriptionDepth
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregateService{store: store, policy: policy, maxDepth: maxDepth, logger: logger}
}

func (s *AggregateService) UserWithAllData(ctx context.Context, id string) (UserWithAllData, error) {
	user, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return UserWithAllData{}, err
	}
	return s.withAllData(ctx, user), nil
}

func (s *AggregateService) withAllData(ctx context.Context, user entity.User) UserWithAllData {
	view := UserWithAllData{
		User:        user,
		Posts:       s.store.Posts.FindMany(ctx, repository.Equals("userId", user.ID)),
		MemberTypes: []entity.MemberType{},
	}

	profiles := s.store.Profiles.FindMany(ctx, repository.Equals("userId", user.ID))
	if len(profiles) == 0 {
		return view
	}
	view.Profile = &profiles[0]

	typeIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		typeIDs = append(typeIDs, p.MemberTypeID)
	}
	view.MemberTypes = s.store.MemberTypes.FindMany(ctx, repository.EqualsAnyOf("id", typeIDs...))
	return view
}

func (s *AggregateService) AllUsersWithAllData(ctx context.Context) ([]UserWithAllData, error) {
	users := s.store.Users.FindMany(ctx, repository.All())
	views := make([]UserWithAllData, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, u := range users {
		g.Go(func() error {
			views[i] = s.withAllData(gctx, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *AggregateService) UserWithSubscribers(ctx context.Context, id string) (UserWithSubscribers, error) {
	user, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return UserWithSubscribers{}, err
	}

	view := UserWithSubscribers{
		User:             user,
		Posts:            s.store.Posts.FindMany(ctx, repository.Equals("userId", id)),
		SubscribedToUser: []entity.User{},
	}
	if len(user.SubscribedToUserIDs) > 0 {
		view.SubscribedToUser = s.store.Users.FindMany(ctx, repository.EqualsAnyOf("id", user.SubscribedToUserIDs...))
	}
	return view, nil
}

// UserSubscriptionClosure expands the users that id follows, depth levels
// deep. Depth 0 returns the user alone.
func (s *AggregateService) UserSubscriptionClosure(ctx context.Context, id string, depth int) (SubscriptionNode, error) {
	if err := s.checkDepth(depth); err != nil {
		return SubscriptionNode{}, err
	}
	user, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return SubscriptionNode{}, err
	}
	return s.expand(ctx, user, depth), nil
}

func (s *AggregateService) UsersWithSubscriptionClosure(ctx context.Context, depth int) ([]SubscriptionNode, error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}
	users := s.store.Users.FindMany(ctx, repository.All())
	nodes := make([]SubscriptionNode, len(users))
	for i, u := range users {
		nodes[i] = s.expand(ctx, u, depth)
	}
	return nodes, nil
}

func (s *AggregateService) checkDepth(depth int) error {
	if depth < 0 {
		return repository.Invalid("depth must not be negative, got %d", depth)
	}
	if depth > s.maxDepth {
		return repository.Invalid("depth %d exceeds the maximum of %d", depth, s.maxDepth)
	}
	return nil
}

func (s *AggregateService) expand(ctx context.Context, user entity.User, depth int) SubscriptionNode {
	node := SubscriptionNode{User: user, SubscribedTo: []SubscriptionNode{}}
	if depth == 0 || len(user.SubscribedToUserIDs) == 0 {
		return node
	}
	for _, next := range s.store.Users.FindMany(ctx, repository.EqualsAnyOf("id", user.SubscribedToUserIDs...)) {
		node.SubscribedTo = append(node.SubscribedTo, s.expand(ctx, next, depth-1))
	}
	return node
}

func (s *AggregateService) UsersWithFollowers(ctx context.Context) []UserWithFollowers {
	users := s.store.Users.FindMany(ctx, repository.All())
	views := make([]UserWithFollowers, 0, len(users))
	for _, u := range users {
		view := UserWithFollowers{
			User:      u,
			Followers: s.store.Users.FindMany(ctx, repository.InArray("subscribedToUserIds", u.ID)),
		}
		if p, ok := s.store.Profiles.FindOne(ctx, repository.Equals("userId", u.ID)); ok {
			view.Profile = &p
		}
		views = append(views, view)
	}
	return views
}

func (s *AggregateService) Everything(ctx context.Context) Everything {
	return Everything{
		Users:       s.store.Users.FindMany(ctx, repository.All()),
		Profiles:    s.store.Profiles.FindMany(ctx, repository.All()),
		Posts:       s.store.Posts.FindMany(ctx, repository.All()),
		MemberTypes: s.store.MemberTypes.FindMany(ctx, repository.All()),
	}
}

// CompositeByID runs the four point lookups concurrently and waits for all of
// them. Misses are handled according to the configured policy.
func (s *AggregateService) CompositeByID(ctx context.Context, ids CompositeIDs) (Composite, error) {
	var (
		result Composite
		errs   [4]error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.store.Users.Get(gctx, ids.UserID)
		if err != nil {
			errs[0] = err
			return nil
		}
		result.User = &u
		return nil
	})
	g.Go(func() error {
		p, err := s.store.Profiles.Get(gctx, ids.ProfileID)
		if err != nil {
			errs[1] = err
			return nil
		}
		result.Profile = &p
		return nil
	})
	g.Go(func() error {
		p, err := s.store.Posts.Get(gctx, ids.PostID)
		if err != nil {
			errs[2] = err
			return nil
		}
		result.Post = &p
		return nil
	})
	g.Go(func() error {
		m, err := s.store.MemberTypes.Get(gctx, ids.MemberTypeID)
		if err != nil {
			errs[3] = err
			return nil
		}
		result.MemberType = &m
		return nil
	})
	if err := g.Wait(); err != nil {
		return Composite{}, err
	}

	names := [4]string{"user", "profile", "post", "memberType"}
	result.NotFound = []string{}
	for i, err := range errs {
		if err == nil {
			continue
		}
		if s.policy == CompositeStrict {
			return Composite{}, err
		}
		result.NotFound = append(result.NotFound, names[i])
	}
	if len(result.NotFound) > 0 {
		s.logger.Debug("composite lookup incomplete", zap.Strings("not_found", result.NotFound))
	}
	return result, nil
}
