package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/domain/repository"
)

// Integrity keeps cross-collection references consistent. Mutations that add
// a reference to a user or member type run under the read side of refMu;
// deleting a referenced entity takes the write side, so a reference can never
// be added to an entity while its delete cascade is running.
type Integrity struct {
	store  *repository.Store
	logger *zap.Logger

	refMu sync.RWMutex
}

func NewIntegrity(store *repository.Store, logger *zap.Logger) *Integrity {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Integrity{store: store, logger: logger}
}

// referencing runs fn while no referenced entity can be deleted.
func (i *Integrity) referencing(fn func() error) error {
	i.refMu.RLock()
	defer i.refMu.RUnlock()
	return fn()
}

func (i *Integrity) requireUser(ctx context.Context, id string) error {
	if _, err := i.store.Users.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Invalid("user %q does not exist", id)
		}
		return err
	}
	return nil
}

func (i *Integrity) requireUsers(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	found := i.store.Users.FindMany(ctx, repository.EqualsAnyOf("id", ids...))
	known := make(map[string]struct{}, len(found))
	for _, u := range found {
		known[u.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return repository.Invalid("user %q does not exist", id)
		}
	}
	return nil
}

func (i *Integrity) requireMemberType(ctx context.Context, id string) error {
	if _, err := i.store.MemberTypes.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.Invalid("member type %q does not exist", id)
		}
		return err
	}
	return nil
}

// DeleteUser removes the user, then its profile, all of its posts, and its id
// from every follower's subscription list. Every step runs even when an
// earlier one fails; failures come back as a *repository.CascadeError next to
// the deleted user.
func (i *Integrity) DeleteUser(ctx context.Context, id string) (entity.User, error) {
	i.refMu.Lock()
	defer i.refMu.Unlock()

	deleted, err := i.store.Users.Delete(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	var errs []error
	profiles := i.store.Profiles.FindMany(ctx, repository.Equals("userId", id))
	for _, p := range profiles {
		if _, err := i.store.Profiles.Delete(ctx, p.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Errorf("delete profile %s: %w", p.ID, err))
		}
	}

	posts := i.store.Posts.FindMany(ctx, repository.Equals("userId", id))
	for _, p := range posts {
		if _, err := i.store.Posts.Delete(ctx, p.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Errorf("delete post %s: %w", p.ID, err))
		}
	}

	followers := i.store.Users.FindMany(ctx, repository.InArray("subscribedToUserIds", id))
	for _, f := range followers {
		if _, err := i.store.Users.Change(ctx, f.ID, withoutSubscription(id, nil)); err != nil && !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Errorf("unsubscribe user %s: %w", f.ID, err))
		}
	}

	i.logger.Info("user deleted",
		zap.String("user_id", id),
		zap.Int("profiles", len(profiles)),
		zap.Int("posts", len(posts)),
		zap.Int("followers", len(followers)),
	)

	if len(errs) > 0 {
		cascadeErr := &repository.CascadeError{Entity: "user", ID: id, Err: errors.Join(errs...)}
		i.logger.Warn("user cascade incomplete", zap.String("user_id", id), zap.Error(cascadeErr))
		return deleted, cascadeErr
	}
	return deleted, nil
}

// DeleteMemberType refuses to remove a member type that profiles still use.
func (i *Integrity) DeleteMemberType(ctx context.Context, id string) (entity.MemberType, error) {
	i.refMu.Lock()
	defer i.refMu.Unlock()

	if _, err := i.store.MemberTypes.Get(ctx, id); err != nil {
		return entity.MemberType{}, err
	}
	if profiles := i.store.Profiles.FindMany(ctx, repository.Equals("memberTypeId", id)); len(profiles) > 0 {
		return entity.MemberType{}, repository.Invalid("member type %q is used by %d profile(s)", id, len(profiles))
	}
	return i.store.MemberTypes.Delete(ctx, id)
}

// Subscribe adds targetID to the subscriber's list. Subscribing twice is a
// no-op.
func (i *Integrity) Subscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error) {
	if subscriberID == targetID {
		return entity.User{}, repository.Invalid("user %q cannot subscribe to themselves", subscriberID)
	}

	var updated entity.User
	err := i.referencing(func() error {
		if _, err := i.store.Users.Get(ctx, subscriberID); err != nil {
			return err
		}
		if err := i.requireUser(ctx, targetID); err != nil {
			return err
		}

		var err error
		updated, err = i.store.Users.Change(ctx, subscriberID, repository.PatchFunc[entity.User](func(u entity.User) entity.User {
			if !u.IsSubscribedTo(targetID) {
				u.SubscribedToUserIDs = append(u.SubscribedToUserIDs, targetID)
			}
			return u
		}))
		return err
	})
	if err != nil {
		return entity.User{}, err
	}

	i.logger.Debug("user subscribed", zap.String("subscriber_id", subscriberID), zap.String("target_id", targetID))
	return updated, nil
}

// Unsubscribe removes targetID from the subscriber's list. Both users must
// exist and the subscription must be present; otherwise nothing changes and a
// validation error is returned.
func (i *Integrity) Unsubscribe(ctx context.Context, subscriberID, targetID string) (entity.User, error) {
	if err := i.requireUser(ctx, targetID); err != nil {
		return entity.User{}, err
	}
	subscriber, err := i.store.Users.Get(ctx, subscriberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.User{}, repository.Invalid("user %q does not exist", subscriberID)
		}
		return entity.User{}, err
	}
	if !subscriber.IsSubscribedTo(targetID) {
		return entity.User{}, repository.Invalid("user %q is not subscribed to %q", subscriberID, targetID)
	}

	missing := false
	updated, err := i.store.Users.Change(ctx, subscriberID, withoutSubscription(targetID, &missing))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.User{}, repository.Invalid("user %q does not exist", subscriberID)
		}
		return entity.User{}, err
	}
	if missing {
		return entity.User{}, repository.Invalid("user %q is not subscribed to %q", subscriberID, targetID)
	}

	i.logger.Debug("user unsubscribed", zap.String("subscriber_id", subscriberID), zap.String("target_id", targetID))
	return updated, nil
}

// withoutSubscription drops targetID from a user's list. When missing is
// non-nil it is set if the list did not contain targetID.
func withoutSubscription(targetID string, missing *bool) repository.Patch[entity.User] {
	return repository.PatchFunc[entity.User](func(u entity.User) entity.User {
		if !u.IsSubscribedTo(targetID) {
			if missing != nil {
				*missing = true
			}
			return u
		}
		ids := make([]string, 0, len(u.SubscribedToUserIDs)-1)
		for _, id := range u.SubscribedToUserIDs {
			if id != targetID {
				ids = append(ids, id)
			}
		}
		u.SubscribedToUserIDs = ids
		return u
	})
}
