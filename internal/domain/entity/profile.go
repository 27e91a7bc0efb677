package entity

// Profile holds the personal details of a user. A user has at most one.
type Profile struct {
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

func (p Profile) EntityID() string { return p.ID }

func (p Profile) WithID(id string) Profile {
	p.ID = id
	return p
}

func (p Profile) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "avatar":
		return p.Avatar, true
	case "sex":
		return p.Sex, true
	case "birthday":
		return p.Birthday, true
	case "country":
		return p.Country, true
	case "street":
		return p.Street, true
	case "city":
		return p.City, true
	case "memberTypeId":
		return p.MemberTypeID, true
	case "userId":
		return p.UserID, true
	}
	return nil, false
}

func (p Profile) Clone() Profile     { return p }
func (p Profile) Normalize() Profile { return p }

// ProfilePatch carries a partial update. The owning user cannot be changed.
type ProfilePatch struct {
	Avatar       *string `json:"avatar,omitempty"`
	Sex          *string `json:"sex,omitempty"`
	Birthday     *int    `json:"birthday,omitempty"`
	Country      *string `json:"country,omitempty"`
	Street       *string `json:"street,omitempty"`
	City         *string `json:"city,omitempty"`
	MemberTypeID *string `json:"memberTypeId,omitempty"`
}

func (p ProfilePatch) Apply(pr Profile) Profile {
	if p.Avatar != nil {
		pr.Avatar = *p.Avatar
	}
	if p.Sex != nil {
		pr.Sex = *p.Sex
	}
	if p.Birthday != nil {
		pr.Birthday = *p.Birthday
	}
	if p.Country != nil {
		pr.Country = *p.Country
	}
	if p.Street != nil {
		pr.Street = *p.Street
	}
	if p.City != nil {
		pr.City = *p.City
	}
	if p.MemberTypeID != nil {
		pr.MemberTypeID = *p.MemberTypeID
	}
	return pr
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Avatar == nil && p.Sex == nil && p.Birthday == nil && p.Country == nil &&
		p.Street == nil && p.City == nil && p.MemberTypeID == nil
}
