package entity

// User represents a member of the social graph. SubscribedToUserIDs lists the
// users this user follows.
type User struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

func (u User) EntityID() string { return u.ID }

func (u User) WithID(id string) User {
	u.ID = id
	return u
}

func (u User) Field(key string) (any, bool) {
	switch key {
	case "id":
		return u.ID, true
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "subscribedToUserIds":
		return u.SubscribedToUserIDs, true
	}
	return nil, false
}

func (u User) Clone() User {
	ids := make([]string, len(u.SubscribedToUserIDs))
	copy(ids, u.SubscribedToUserIDs)
	u.SubscribedToUserIDs = ids
	return u
}

// Normalize drops the user's own id and duplicates from SubscribedToUserIDs,
// keeping first-seen order. The list is never nil.
func (u User) Normalize() User {
	seen := make(map[string]struct{}, len(u.SubscribedToUserIDs))
	ids := make([]string, 0, len(u.SubscribedToUserIDs))
	for _, id := range u.SubscribedToUserIDs {
		if id == "" || id == u.ID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	u.SubscribedToUserIDs = ids
	return u
}

// IsSubscribedTo reports whether the user follows targetID.
func (u User) IsSubscribedTo(targetID string) bool {
	for _, id := range u.SubscribedToUserIDs {
		if id == targetID {
			return true
		}
	}
	return false
}

// UserPatch carries a partial update. Nil fields keep their prior value.
type UserPatch struct {
	FirstName           *string   `json:"firstName,omitempty"`
	LastName            *string   `json:"lastName,omitempty"`
	Email               *string   `json:"email,omitempty"`
	SubscribedToUserIDs *[]string `json:"subscribedToUserIds,omitempty"`
}

func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.SubscribedToUserIDs != nil {
		ids := make([]string, len(*p.SubscribedToUserIDs))
		copy(ids, *p.SubscribedToUserIDs)
		u.SubscribedToUserIDs = ids
	}
	return u
}

func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.SubscribedToUserIDs == nil
}
