package gql

import "github.com/graphql-go/graphql"

// Object types resolve through graphql-go's default resolver, which matches
// fields against the json tags of the entity and view structs.

var memberTypeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MemberType",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"discount":        &graphql.Field{Type: graphql.Int},
		"monthPostsLimit": &graphql.Field{Type: graphql.Int},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":   &graphql.Field{Type: graphql.String},
		"content": &graphql.Field{Type: graphql.String},
		"userId":  &graphql.Field{Type: graphql.ID},
	},
})

var profileType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Profile",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"avatar":       &graphql.Field{Type: graphql.String},
		"sex":          &graphql.Field{Type: graphql.String},
		"birthday":     &graphql.Field{Type: graphql.Int},
		"country":      &graphql.Field{Type: graphql.String},
		"street":       &graphql.Field{Type: graphql.String},
		"city":         &graphql.Field{Type: graphql.String},
		"memberTypeId": &graphql.Field{Type: graphql.ID},
		"userId":       &graphql.Field{Type: graphql.ID},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":                  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"firstName":           &graphql.Field{Type: graphql.String},
		"lastName":            &graphql.Field{Type: graphql.String},
		"email":               &graphql.Field{Type: graphql.String},
		"subscribedToUserIds": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	},
})

var userWithAllDataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserWithAllData",
	Fields: graphql.Fields{
		"user":        &graphql.Field{Type: userType},
		"profile":     &graphql.Field{Type: profileType},
		"posts":       &graphql.Field{Type: graphql.NewList(postType)},
		"memberTypes": &graphql.Field{Type: graphql.NewList(memberTypeType)},
	},
})

var userWithSubscribersType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserWithSubscribedToUserPosts",
	Fields: graphql.Fields{
		"user":             &graphql.Field{Type: userType},
		"posts":            &graphql.Field{Type: graphql.NewList(postType)},
		"subscribedToUser": &graphql.Field{Type: graphql.NewList(userType)},
	},
})

var subscriptionNodeType *graphql.Object

func init() {
	subscriptionNodeType = graphql.NewObject(graphql.ObjectConfig{
		Name: "SubscriptionNode",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"user":         &graphql.Field{Type: userType},
				"subscribedTo": &graphql.Field{Type: graphql.NewList(subscriptionNodeType)},
			}
		}),
	})
}

var userWithFollowersType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserWithFollowers",
	Fields: graphql.Fields{
		"user":             &graphql.Field{Type: userType},
		"profile":          &graphql.Field{Type: profileType},
		"userSubscribedTo": &graphql.Field{Type: graphql.NewList(userType)},
	},
})

var everythingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "All",
	Fields: graphql.Fields{
		"users":       &graphql.Field{Type: graphql.NewList(userType)},
		"profiles":    &graphql.Field{Type: graphql.NewList(profileType)},
		"posts":       &graphql.Field{Type: graphql.NewList(postType)},
		"memberTypes": &graphql.Field{Type: graphql.NewList(memberTypeType)},
	},
})

var compositeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AllById",
	Fields: graphql.Fields{
		"user":       &graphql.Field{Type: userType},
		"profile":    &graphql.Field{Type: profileType},
		"post":       &graphql.Field{Type: postType},
		"memberType": &graphql.Field{Type: memberTypeType},
		"notFound":   &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

func inputFields(required []string, fields graphql.InputObjectConfigFieldMap) graphql.InputObjectConfigFieldMap {
	for _, name := range required {
		if f, ok := fields[name]; ok {
			f.Type = graphql.NewNonNull(f.Type)
		}
	}
	return fields
}

var userInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: inputFields([]string{"firstName", "lastName", "email"}, graphql.InputObjectConfigFieldMap{
		"id":                  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"firstName":           &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":               &graphql.InputObjectFieldConfig{Type: graphql.String},
		"subscribedToUserIds": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	}),
})

var changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeUserInput",
	Fields: inputFields([]string{"id"}, graphql.InputObjectConfigFieldMap{
		"id":                  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"firstName":           &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":               &graphql.InputObjectFieldConfig{Type: graphql.String},
		"subscribedToUserIds": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	}),
})

func profileInputFields() graphql.InputObjectConfigFieldMap {
	return graphql.InputObjectConfigFieldMap{
		"id":           &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sex":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"country":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	}
}

var profileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProfileInput",
	Fields: func() graphql.InputObjectConfigFieldMap {
		fields := profileInputFields()
		fields["userId"] = &graphql.InputObjectFieldConfig{Type: graphql.ID}
		return inputFields([]string{"userId", "memberTypeId"}, fields)
	}(),
})

var changeProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name:   "ChangeProfileInput",
	Fields: inputFields([]string{"id"}, profileInputFields()),
})

var postInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PostInput",
	Fields: inputFields([]string{"title", "userId"}, graphql.InputObjectConfigFieldMap{
		"id":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
	}),
})

var changePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangePostInput",
	Fields: inputFields([]string{"id"}, graphql.InputObjectConfigFieldMap{
		"id":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"userId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
	}),
})

var memberTypeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MemberTypeInput",
	Fields: inputFields([]string{"id"}, graphql.InputObjectConfigFieldMap{
		"id":              &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"discount":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"monthPostsLimit": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	}),
})

var changeMemberTypeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeMemberTypeInput",
	Fields: inputFields([]string{"id"}, graphql.InputObjectConfigFieldMap{
		"id":              &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"discount":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"monthPostsLimit": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	}),
})

// subscribeInput names the target (id) and the subscriber (userId).
var subscribeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SubscribeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"userId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})
