package usecase

import (
	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// Facade is the set of operations shared by the REST handlers and the GraphQL
// resolvers, so both transports get identical semantics.
type Facade struct {
	Users       UserUsecase
	Profiles    ProfileUsecase
	Posts       PostUsecase
	MemberTypes MemberTypeUsecase
	Aggregates  AggregateUsecase
}

// Options tunes facade behavior.
type Options struct {
	CompositePolicy CompositePolicy
	// MaxSubscriptionDepth caps closure queries; zero selects
	// DefaultMaxSubscriptionDepth.
	MaxSubscriptionDepth int
}

// NewFacade wires the use cases around one store instance.
func NewFacade(store *repository.Store, logger *zap.Logger, opts Options) *Facade {
	if logger == nil {
		logger = zap.NewNop()
	}
	integrity := NewIntegrity(store, logger.Named("integrity"))
	return &Facade{
		Users:       NewUserService(store, integrity, logger.Named("users")),
		Profiles:    NewProfileService(store, integrity, logger.Named("profiles")),
		Posts:       NewPostService(store, integrity, logger.Named("posts")),
		MemberTypes: NewMemberTypeService(store, integrity),
		Aggregates:  NewAggregateService(store, opts.CompositePolicy, opts.MaxSubscriptionDepth, logger.Named("aggregates")),
	}
}
