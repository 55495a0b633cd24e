package domain

import "time"

// Comment is embedded inside its parent Post; it is not a standalone
// collection. Insertion order is display order and comment text is never
// edited after creation.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is the aggregate root for blog content. Author and AuthorID are
// snapshots of the creator's identity taken at creation time, never
// re-synced against the user record.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorID   string    `json:"authorId"`
	CoverImage string    `json:"coverImage,omitempty"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
