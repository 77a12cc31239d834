package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is stored as a composite so first and last name stay queryable
// separately; clients only ever see the combined display string.
type Author struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Display returns the single string form exposed on the API ("First Last").
func (a Author) Display() string {
	return a.FirstName + " " + a.LastName
}

// BlogPost is the persistent model. The store assigns ID and Created on
// insert; both are immutable afterwards.
type BlogPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Author  Author             `bson:"author"`
	Title   string             `bson:"title"`
	Content string             `bson:"content"`
	Created time.Time          `bson:"created"`
}

// Rendered is the client-facing shape: author flattened to a display string.
type Rendered struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// Render projects a stored post into its API representation.
func (p *BlogPost) Render() Rendered {
	return Rendered{
		ID:      p.ID.Hex(),
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.Display(),
		Created: p.Created,
	}
}
