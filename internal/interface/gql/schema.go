package gql

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/usecase"
)

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func dataArg(input *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
}

// decodeData copies the "data" argument into dst by way of its json tags.
func decodeData(p graphql.ResolveParams, dst any) error {
	raw, err := json.Marshal(p.Args["data"])
	if err != nil {
		return fmt.Errorf("encode data argument: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode data argument: %w", err)
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

// NewSchema builds the query and mutation roots over the facade. depth is
// the default expansion depth of getUsersSubscriptions.
func NewSchema(f *usecase.Facade, depth int) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"all": &graphql.Field{
				Type: everythingType,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.Everything(p.Context), nil
				},
			},
			"allById": &graphql.Field{
				Type: compositeType,
				Args: graphql.FieldConfigArgument{
					"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"profileId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"postId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"memberTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.CompositeByID(p.Context, usecase.CompositeIDs{
						UserID:       stringArg(p, "userId"),
						ProfileID:    stringArg(p, "profileId"),
						PostID:       stringArg(p, "postId"),
						MemberTypeID: stringArg(p, "memberTypeId"),
					})
				},
			},
			"getUser": &graphql.Field{
				Type: userWithAllDataType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.UserWithAllData(p.Context, stringArg(p, "id"))
				},
			},
			"getUsers": &graphql.Field{
				Type: graphql.NewList(userWithAllDataType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.AllUsersWithAllData(p.Context)
				},
			},
			"getUsersWithUserSubscribedToProfiles": &graphql.Field{
				Type: graphql.NewList(userWithFollowersType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.UsersWithFollowers(p.Context), nil
				},
			},
			"getUserSubscribedPosts": &graphql.Field{
				Type: userWithSubscribersType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Aggregates.UserWithSubscribers(p.Context, stringArg(p, "id"))
				},
			},
			"getUsersSubscriptions": &graphql.Field{
				Type: graphql.NewList(subscriptionNodeType),
				Args: graphql.FieldConfigArgument{
					"depth": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: depth},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					d, ok := p.Args["depth"].(int)
					if !ok {
						d = depth
					}
					return f.Aggregates.UsersWithSubscriptionClosure(p.Context, d)
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nullable(f.Users.GetByID(p.Context, stringArg(p, "id")))
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nullable(f.Profiles.GetByID(p.Context, stringArg(p, "id")))
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nullable(f.Posts.GetByID(p.Context, stringArg(p, "id")))
				},
			},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nullable(f.MemberTypes.GetByID(p.Context, stringArg(p, "id")))
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Users.List(p.Context), nil
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Profiles.List(p.Context), nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.Posts.List(p.Context), nil
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(memberTypeType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return f.MemberTypes.List(p.Context), nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(f),
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func mutationFields(f *usecase.Facade) graphql.Fields {
	return graphql.Fields{
		"createUser": &graphql.Field{
			Type: userType,
			Args: dataArg(userInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in usecase.CreateUserInput
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Users.Create(p.Context, in))
			},
		},
		"createProfile": &graphql.Field{
			Type: profileType,
			Args: dataArg(profileInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in usecase.CreateProfileInput
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Profiles.Create(p.Context, in))
			},
		},
		"createPost": &graphql.Field{
			Type: postType,
			Args: dataArg(postInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in usecase.CreatePostInput
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Posts.Create(p.Context, in))
			},
		},
		"createMemberType": &graphql.Field{
			Type: memberTypeType,
			Args: dataArg(memberTypeInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in usecase.CreateMemberTypeInput
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.MemberTypes.Create(p.Context, in))
			},
		},
		"updateUser": &graphql.Field{
			Type: userType,
			Args: dataArg(changeUserInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in struct {
					ID string `json:"id"`
					entity.UserPatch
				}
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Users.Update(p.Context, in.ID, in.UserPatch))
			},
		},
		"updateProfile": &graphql.Field{
			Type: profileType,
			Args: dataArg(changeProfileInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in struct {
					ID string `json:"id"`
					entity.ProfilePatch
				}
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Profiles.Update(p.Context, in.ID, in.ProfilePatch))
			},
		},
		"updatePost": &graphql.Field{
			Type: postType,
			Args: dataArg(changePostInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in struct {
					ID string `json:"id"`
					entity.PostPatch
				}
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Posts.Update(p.Context, in.ID, in.PostPatch))
			},
		},
		"updateMemberType": &graphql.Field{
			Type: memberTypeType,
			Args: dataArg(changeMemberTypeInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in struct {
					ID string `json:"id"`
					entity.MemberTypePatch
				}
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.MemberTypes.Update(p.Context, in.ID, in.MemberTypePatch))
			},
		},
		"deleteUser": &graphql.Field{
			Type: userType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return nullable(f.Users.Delete(p.Context, stringArg(p, "id")))
			},
		},
		"deleteProfile": &graphql.Field{
			Type: profileType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return nullable(f.Profiles.Delete(p.Context, stringArg(p, "id")))
			},
		},
		"deletePost": &graphql.Field{
			Type: postType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return nullable(f.Posts.Delete(p.Context, stringArg(p, "id")))
			},
		},
		"deleteMemberType": &graphql.Field{
			Type: memberTypeType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return nullable(f.MemberTypes.Delete(p.Context, stringArg(p, "id")))
			},
		},
		"subscribeTo": &graphql.Field{
			Type: userType,
			Args: dataArg(subscribeInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in subscription
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Users.Subscribe(p.Context, in.UserID, in.ID))
			},
		},
		"unsubscribeFrom": &graphql.Field{
			Type: userType,
			Args: dataArg(subscribeInput),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var in subscription
				if err := decodeData(p, &in); err != nil {
					return nil, err
				}
				return nullable(f.Users.Unsubscribe(p.Context, in.UserID, in.ID))
			},
		},
	}
}

// subscription makes UserID follow (or stop following) ID.
type subscription struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

// nullable turns a failed lookup into an explicit null so the field resolves
// to null next to the error instead of a zero-valued object.
func nullable[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
