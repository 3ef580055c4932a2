package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BoardMember is a club office bearer shown on the public board page.
type BoardMember struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBoardMemberInput struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Order    int    `json:"order"`
}

func (in *CreateBoardMemberInput) Validate() error {
	if err := requireText("name", &in.Name); err != nil {
		return err
	}
	if err := requireText("position", &in.Position); err != nil {
		return err
	}
	if err := requireEmail("email", &in.Email); err != nil {
		return err
	}
	return requireText("image", &in.Image)
}

// UpdateBoardMemberInput is a partial update; invalid (absent or null) fields are left unchanged.
type UpdateBoardMemberInput struct {
	Name     null.String `json:"name"`
	Position null.String `json:"position"`
	Email    null.String `json:"email"`
	Image    null.String `json:"image"`
	Order    null.Int    `json:"order"`
}

func (in *UpdateBoardMemberInput) Validate() error {
	if in.Name.Valid {
		if err := requireText("name", &in.Name.String); err != nil {
			return err
		}
	}
	if in.Position.Valid {
		if err := requireText("position", &in.Position.String); err != nil {
			return err
		}
	}
	if in.Email.Valid {
		if err := requireEmail("email", &in.Email.String); err != nil {
			return err
		}
	}
	if in.Image.Valid {
		if err := requireText("image", &in.Image.String); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the present fields onto m.
func (in *UpdateBoardMemberInput) Apply(m *BoardMember) {
	if in.Name.Valid {
		m.Name = in.Name.String
	}
	if in.Position.Valid {
		m.Position = in.Position.String
	}
	if in.Email.Valid {
		m.Email = in.Email.String
	}
	if in.Image.Valid {
		m.Image = in.Image.String
	}
	if in.Order.Valid {
		m.Order = in.Order.Int
	}
}
