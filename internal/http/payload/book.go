package payload

import (
	"bookshelf/internal/core"
)

// BookRequest carries the fields of a book to create. All fields are
// optional, the persistence layer only requires a generated id.
type BookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}

func (b BookRequest) ToRecord() core.BookRecord {
	return core.BookRecord{
		Title:    b.Title,
		Author:   b.Author,
		ImageURL: b.ImageURL,
	}
}

// BookUpdateRequest carries a partial update. Pointer fields distinguish
// "not supplied" from "set to empty".
type BookUpdateRequest struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	ImageURL *string `json:"imageUrl"`
}

// Fields maps the supplied values to their database columns.
func (b BookUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	if b.Title != nil {
		fields["title"] = *b.Title
	}
	if b.Author != nil {
		fields["author"] = *b.Author
	}
	if b.ImageURL != nil {
		fields["image_url"] = *b.ImageURL
	}
	return fields
}
