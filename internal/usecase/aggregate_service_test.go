package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/social-backend/internal/domain/repository"
	"github.com/wichananm65/social-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/social-backend/internal/usecase"
)

func seedGraph(t *testing.T, f *usecase.Facade) {
	t.Helper()
	ctx := context.Background()
	mustUser(t, f, "u1")
	mustUser(t, f, "u2", "u1")
	mustUser(t, f, "u3", "u2")
	mustUser(t, f, "u4")

	_, err := f.Profiles.Create(ctx, usecase.CreateProfileInput{ID: "p1", UserID: "u1", MemberTypeID: "business"})
	require.NoError(t, err)
	_, err = f.Posts.Create(ctx, usecase.CreatePostInput{ID: "post1", Title: "one", UserID: "u1"})
	require.NoError(t, err)
	_, err = f.Posts.Create(ctx, usecase.CreatePostInput{ID: "post2", Title: "two", UserID: "u1"})
	require.NoError(t, err)
}

func TestUserWithAllData(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)
	ctx := context.Background()

	view, err := f.Aggregates.UserWithAllData(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, view.Profile)
	assert.Equal(t, "p1", view.Profile.ID)
	assert.Len(t, view.Posts, 2)
	require.Len(t, view.MemberTypes, 1)
	assert.Equal(t, "business", view.MemberTypes[0].ID)

	bare, err := f.Aggregates.UserWithAllData(ctx, "u4")
	require.NoError(t, err)
	assert.Nil(t, bare.Profile)
	assert.Empty(t, bare.Posts)
	assert.NotNil(t, bare.MemberTypes)
	assert.Empty(t, bare.MemberTypes)

	_, err = f.Aggregates.UserWithAllData(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAllUsersWithAllDataKeepsOrder(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)

	views, err := f.Aggregates.AllUsersWithAllData(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 4)
	for i, id := range []string{"u1", "u2", "u3", "u4"} {
		assert.Equal(t, id, views[i].User.ID)
	}
	assert.Len(t, views[0].Posts, 2)
	assert.Nil(t, views[1].Profile)
}

func TestUserWithSubscribers(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)

	view, err := f.Aggregates.UserWithSubscribers(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, view.SubscribedToUser, 1)
	assert.Equal(t, "u1", view.SubscribedToUser[0].ID)
	assert.Empty(t, view.Posts)
}

func TestSubscriptionClosure(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)
	ctx := context.Background()

	zero, err := f.Aggregates.UserSubscriptionClosure(ctx, "u3", 0)
	require.NoError(t, err)
	assert.Empty(t, zero.SubscribedTo)

	one, err := f.Aggregates.UserSubscriptionClosure(ctx, "u3", 1)
	require.NoError(t, err)
	require.Len(t, one.SubscribedTo, 1)
	assert.Equal(t, "u2", one.SubscribedTo[0].User.ID)
	assert.Empty(t, one.SubscribedTo[0].SubscribedTo)

	two, err := f.Aggregates.UserSubscriptionClosure(ctx, "u3", 2)
	require.NoError(t, err)
	require.Len(t, two.SubscribedTo, 1)
	require.Len(t, two.SubscribedTo[0].SubscribedTo, 1)
	assert.Equal(t, "u1", two.SubscribedTo[0].SubscribedTo[0].User.ID)

	_, err = f.Aggregates.UserSubscriptionClosure(ctx, "u3", -1)
	assert.ErrorIs(t, err, repository.ErrValidation)

	all, err := f.Aggregates.UsersWithSubscriptionClosure(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSubscriptionClosureHandlesCycles(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	ctx := context.Background()
	mustUser(t, f, "a")
	mustUser(t, f, "b", "a")
	_, err := f.Users.Subscribe(ctx, "a", "b")
	require.NoError(t, err)

	node, err := f.Aggregates.UserSubscriptionClosure(ctx, "a", 3)
	require.NoError(t, err)
	assert.Equal(t, "b", node.SubscribedTo[0].User.ID)
	assert.Equal(t, "a", node.SubscribedTo[0].SubscribedTo[0].User.ID)
	assert.Empty(t, node.SubscribedTo[0].SubscribedTo[0].SubscribedTo[0].SubscribedTo)
}

func TestSubscriptionClosureDepthIsCapped(t *testing.T) {
	store := inmemory.NewStore()
	f := usecase.NewFacade(store, nil, usecase.Options{MaxSubscriptionDepth: 2})
	ctx := context.Background()
	mustUser(t, f, "a")
	mustUser(t, f, "b", "a")

	_, err := f.Aggregates.UserSubscriptionClosure(ctx, "b", 2)
	require.NoError(t, err)
	_, err = f.Aggregates.UserSubscriptionClosure(ctx, "b", 3)
	assert.ErrorIs(t, err, repository.ErrValidation)
	_, err = f.Aggregates.UsersWithSubscriptionClosure(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrValidation)
	_, err = f.Aggregates.UsersWithSubscriptionClosure(ctx, 1_000_000)
	assert.ErrorIs(t, err, repository.ErrValidation)

	// Unset caps fall back to the default.
	def, _ := newFacade(t, usecase.CompositePartial)
	_, err = def.Aggregates.UsersWithSubscriptionClosure(ctx, usecase.DefaultMaxSubscriptionDepth)
	require.NoError(t, err)
	_, err = def.Aggregates.UsersWithSubscriptionClosure(ctx, usecase.DefaultMaxSubscriptionDepth+1)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestUsersWithFollowers(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)

	views := f.Aggregates.UsersWithFollowers(context.Background())
	require.Len(t, views, 4)
	require.Len(t, views[0].Followers, 1)
	assert.Equal(t, "u2", views[0].Followers[0].ID)
	require.NotNil(t, views[0].Profile)
	assert.Empty(t, views[3].Followers)
}

func TestEverything(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)

	all := f.Aggregates.Everything(context.Background())
	assert.Len(t, all.Users, 4)
	assert.Len(t, all.Profiles, 1)
	assert.Len(t, all.Posts, 2)
	assert.Len(t, all.MemberTypes, 2)
}

func TestCompositeByIDPartial(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositePartial)
	seedGraph(t, f)

	c, err := f.Aggregates.CompositeByID(context.Background(), usecase.CompositeIDs{
		UserID: "u1", ProfileID: "missing", PostID: "post1", MemberTypeID: "basic",
	})
	require.NoError(t, err)
	require.NotNil(t, c.User)
	assert.Nil(t, c.Profile)
	require.NotNil(t, c.Post)
	assert.Equal(t, "one", c.Post.Title)
	require.NotNil(t, c.MemberType)
	assert.Equal(t, []string{"profile"}, c.NotFound)
}

func TestCompositeByIDStrict(t *testing.T) {
	f, _ := newFacade(t, usecase.CompositeStrict)
	seedGraph(t, f)
	ctx := context.Background()

	_, err := f.Aggregates.CompositeByID(ctx, usecase.CompositeIDs{
		UserID: "u1", ProfileID: "missing", PostID: "post1", MemberTypeID: "basic",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	c, err := f.Aggregates.CompositeByID(ctx, usecase.CompositeIDs{
		UserID: "u1", ProfileID: "p1", PostID: "post1", MemberTypeID: "basic",
	})
	require.NoError(t, err)
	assert.Empty(t, c.NotFound)
}

func TestParseCompositePolicy(t *testing.T) {
	p, err := usecase.ParseCompositePolicy("")
	require.NoError(t, err)
	assert.Equal(t, usecase.CompositePartial, p)

	p, err = usecase.ParseCompositePolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, usecase.CompositeStrict, p)

	_, err = usecase.ParseCompositePolicy("lenient")
	assert.Error(t, err)
}
