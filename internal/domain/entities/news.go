package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// NewsArticle is a dated announcement. Content is markdown; ContentHTML is
// filled in on the way out and never stored.
type NewsArticle struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateNewsInput struct {
	Title   string `json:"title" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Excerpt string `json:"excerpt" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image" binding:"required"`
}

func (in *CreateNewsInput) Validate() error {
	if err := requireText("title", &in.Title); err != nil {
		return err
	}
	if err := requireDate("date", &in.Date); err != nil {
		return err
	}
	if err := requireText("excerpt", &in.Excerpt); err != nil {
		return err
	}
	if err := requireText("content", &in.Content); err != nil {
		return err
	}
	return requireText("image", &in.Image)
}

type UpdateNewsInput struct {
	Title   null.String `json:"title"`
	Date    null.String `json:"date"`
	Excerpt null.String `json:"excerpt"`
	Content null.String `json:"content"`
	Image   null.String `json:"image"`
}

func (in *UpdateNewsInput) Validate() error {
	for _, f := range []struct {
		name  string
		value *null.String
	}{
		{"title", &in.Title},
		{"excerpt", &in.Excerpt},
		{"content", &in.Content},
		{"image", &in.Image},
	} {
		if f.value.Valid {
			if err := requireText(f.name, &f.value.String); err != nil {
				return err
			}
		}
	}
	if in.Date.Valid {
		return requireDate("date", &in.Date.String)
	}
	return nil
}

func (in *UpdateNewsInput) Apply(n *NewsArticle) {
	if in.Title.Valid {
		n.Title = in.Title.String
	}
	if in.Date.Valid {
		n.Date = in.Date.String
	}
	if in.Excerpt.Valid {
		n.Excerpt = in.Excerpt.String
	}
	if in.Content.Valid {
		n.Content = in.Content.String
	}
	if in.Image.Valid {
		n.Image = in.Image.String
	}
}
