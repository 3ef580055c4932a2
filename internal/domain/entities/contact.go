package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type ContactStatus string

const ContactStatusNew ContactStatus = "new"

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type ContactSubmitInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (in *ContactSubmitInput) Validate() error {
	if err := requireText("name", &in.Name); err != nil {
		return err
	}
	if err := requireEmail("email", &in.Email); err != nil {
		return err
	}
	if err := requireText("subject", &in.Subject); err != nil {
		return err
	}
	return requireText("message", &in.Message)
}

// ContactInfo is the club's published address block.
type ContactInfo struct {
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	OfficeHours string    `json:"office_hours"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Address:     "Kolhapur, Maharashtra, India",
		Email:       "interactkop@gmail.com",
		OfficeHours: "Saturday: 10:00 AM - 2:00 PM",
	}
}

type UpdateContactInfoInput struct {
	Address     null.String `json:"address"`
	Email       null.String `json:"email"`
	Phone       null.String `json:"phone"`
	OfficeHours null.String `json:"office_hours"`
}

func (in *UpdateContactInfoInput) Validate() error {
	if in.Address.Valid {
		if err := requireText("address", &in.Address.String); err != nil {
			return err
		}
	}
	if in.Email.Valid {
		if err := requireEmail("email", &in.Email.String); err != nil {
			return err
		}
	}
	if in.OfficeHours.Valid {
		if err := requireText("office_hours", &in.OfficeHours.String); err != nil {
			return err
		}
	}
	if in.Phone.Valid {
		in.Phone.String = strings.TrimSpace(in.Phone.String)
		if err := checkLength("phone", in.Phone.String); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies present fields. Phone may be set to "" to clear it.
func (in *UpdateContactInfoInput) Apply(c *ContactInfo) {
	if in.Address.Valid {
		c.Address = in.Address.String
	}
	if in.Email.Valid {
		c.Email = in.Email.String
	}
	if in.Phone.Valid {
		c.Phone = in.Phone.String
	}
	if in.OfficeHours.Valid {
		c.OfficeHours = in.OfficeHours.String
	}
}
