// Package models defines data structures shared by the generator, normalizer, and publisher.
package models

// Article represents a single generated portal entry. The JSON keys are the
// wire format the portal front-end reads from updates.json.
type Article struct {
	Title    string `json:"title" bson:"title"`
	Content  string `json:"content" bson:"content"`
	Link     string `json:"link" bson:"link"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
}

// IsEmpty reports whether the article carries no content at all.
func (a Article) IsEmpty() bool {
	return a.Title == "" && a.Content == "" && a.Link == "" && a.ImageURL == ""
}
