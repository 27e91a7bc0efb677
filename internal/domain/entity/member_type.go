package entity

// MemberType is a membership tier referenced by profiles.
type MemberType struct {
	ID              string `json:"id" yaml:"id"`
	Discount        int    `json:"discount" yaml:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit" yaml:"monthPostsLimit"`
}

func (m MemberType) EntityID() string { return m.ID }

func (m MemberType) WithID(id string) MemberType {
	m.ID = id
	return m
}

func (m MemberType) Field(key string) (any, bool) {
	switch key {
	case "id":
		return m.ID, true
	case "discount":
		return m.Discount, true
	case "monthPostsLimit":
		return m.MonthPostsLimit, true
	}
	return nil, false
}

func (m MemberType) Clone() MemberType     { return m }
func (m MemberType) Normalize() MemberType { return m }

type MemberTypePatch struct {
	Discount        *int `json:"discount,omitempty"`
	MonthPostsLimit *int `json:"monthPostsLimit,omitempty"`
}

func (p MemberTypePatch) Apply(m MemberType) MemberType {
	if p.Discount != nil {
		m.Discount = *p.Discount
	}
	if p.MonthPostsLimit != nil {
		m.MonthPostsLimit = *p.MonthPostsLimit
	}
	return m
}

func (p MemberTypePatch) IsEmpty() bool {
	return p.Discount == nil && p.MonthPostsLimit == nil
}
