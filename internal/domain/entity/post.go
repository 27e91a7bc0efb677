package entity

// Post is a piece of content authored by a user.
type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

func (p Post) EntityID() string { return p.ID }

func (p Post) WithID(id string) Post {
	p.ID = id
	return p
}

func (p Post) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "content":
		return p.Content, true
	case "userId":
		return p.UserID, true
	}
	return nil, false
}

func (p Post) Clone() Post     { return p }
func (p Post) Normalize() Post { return p }

type PostPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	UserID  *string `json:"userId,omitempty"`
}

func (p PostPatch) Apply(post Post) Post {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.UserID != nil {
		post.UserID = *p.UserID
	}
	return post
}

func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.UserID == nil
}
