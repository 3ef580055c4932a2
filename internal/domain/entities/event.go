package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PastEvent is a completed club activity with a photo set.
type PastEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreatePastEventInput struct {
	Title       string   `json:"title" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"`
}

func (in *CreatePastEventInput) Validate() error {
	if err := requireText("title", &in.Title); err != nil {
		return err
	}
	if err := requireDate("date", &in.Date); err != nil {
		return err
	}
	if err := requireText("description", &in.Description); err != nil {
		return err
	}
	in.Images = cleanList(in.Images)
	return nil
}

type UpdatePastEventInput struct {
	Title       null.String `json:"title"`
	Date        null.String `json:"date"`
	Description null.String `json:"description"`
	Images      *[]string   `json:"images"`
}

func (in *UpdatePastEventInput) Validate() error {
	if in.Title.Valid {
		if err := requireText("title", &in.Title.String); err != nil {
			return err
		}
	}
	if in.Date.Valid {
		if err := requireDate("date", &in.Date.String); err != nil {
			return err
		}
	}
	if in.Description.Valid {
		if err := requireText("description", &in.Description.String); err != nil {
			return err
		}
	}
	if in.Images != nil {
		cleaned := cleanList(*in.Images)
		in.Images = &cleaned
	}
	return nil
}

func (in *UpdatePastEventInput) Apply(e *PastEvent) {
	if in.Title.Valid {
		e.Title = in.Title.String
	}
	if in.Date.Valid {
		e.Date = in.Date.String
	}
	if in.Description.Valid {
		e.Description = in.Description.String
	}
	if in.Images != nil {
		e.Images = *in.Images
	}
}

// UpcomingEvent is a scheduled activity members can register for.
type UpcomingEvent struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Venue            string    `json:"venue"`
	Description      string    `json:"description"`
	RegistrationOpen bool      `json:"registration_open"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateUpcomingEventInput struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
	Description string `json:"description" binding:"required"`
	// Absent means open.
	RegistrationOpen null.Bool `json:"registration_open"`
}

func (in *CreateUpcomingEventInput) Validate() error {
	if err := requireText("title", &in.Title); err != nil {
		return err
	}
	if err := requireDate("date", &in.Date); err != nil {
		return err
	}
	if err := requireText("time", &in.Time); err != nil {
		return err
	}
	if err := requireText("venue", &in.Venue); err != nil {
		return err
	}
	return requireText("description", &in.Description)
}

// IsRegistrationOpen resolves the default for an absent flag.
func (in *CreateUpcomingEventInput) IsRegistrationOpen() bool {
	if !in.RegistrationOpen.Valid {
		return true
	}
	return in.RegistrationOpen.Bool
}

type UpdateUpcomingEventInput struct {
	Title            null.String `json:"title"`
	Date             null.String `json:"date"`
	Time             null.String `json:"time"`
	Venue            null.String `json:"venue"`
	Description      null.String `json:"description"`
	RegistrationOpen null.Bool   `json:"registration_open"`
}

func (in *UpdateUpcomingEventInput) Validate() error {
	if in.Title.Valid {
		if err := requireText("title", &in.Title.String); err != nil {
			return err
		}
	}
	if in.Date.Valid {
		if err := requireDate("date", &in.Date.String); err != nil {
			return err
		}
	}
	if in.Time.Valid {
		if err := requireText("time", &in.Time.String); err != nil {
			return err
		}
	}
	if in.Venue.Valid {
		if err := requireText("venue", &in.Venue.String); err != nil {
			return err
		}
	}
	if in.Description.Valid {
		if err := requireText("description", &in.Description.String); err != nil {
			return err
		}
	}
	return nil
}

func (in *UpdateUpcomingEventInput) Apply(e *UpcomingEvent) {
	if in.Title.Valid {
		e.Title = in.Title.String
	}
	if in.Date.Valid {
		e.Date = in.Date.String
	}
	if in.Time.Valid {
		e.Time = in.Time.String
	}
	if in.Venue.Valid {
		e.Venue = in.Venue.String
	}
	if in.Description.Valid {
		e.Description = in.Description.String
	}
	if in.RegistrationOpen.Valid {
		e.RegistrationOpen = in.RegistrationOpen.Bool
	}
}
