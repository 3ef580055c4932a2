package entities

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImage struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateGalleryImageInput struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption" binding:"required"`
}

func (in *CreateGalleryImageInput) Validate() error {
	if err := requireText("url", &in.URL); err != nil {
		return err
	}
	return requireText("caption", &in.Caption)
}
