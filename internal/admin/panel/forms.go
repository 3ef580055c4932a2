package panel

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"interact-club.backend/internal/domain/entities"
)

// FieldError reports a client side validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func required(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: label + " is required"}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func validDate(field, label, value string) error {
	if err := required(field, label, value); err != nil {
		return err
	}
	if _, err := time.Parse(entities.DateLayout, strings.TrimSpace(value)); err != nil {
		return &FieldError{Field: field, Message: label + " must be a date (YYYY-MM-DD)"}
	}
	return nil
}

func value(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

func checked(v url.Values, key string) bool {
	switch strings.ToLower(v.Get(key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// lines splits a textarea into trimmed non-blank entries.
func lines(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

type BoardMemberForm struct {
	Name     string
	Position string
	Email    string
	Image    string
	Order    int
	orderRaw string
}

func ParseBoardMemberForm(v url.Values) BoardMemberForm {
	f := BoardMemberForm{
		Name:     value(v, "name"),
		Position: value(v, "position"),
		Email:    value(v, "email"),
		Image:    value(v, "image"),
		orderRaw: value(v, "order"),
	}
	if n, err := strconv.Atoi(f.orderRaw); err == nil {
		f.Order = n
	}
	return f
}

func (f BoardMemberForm) Validate() error {
	var orderErr error
	if f.orderRaw != "" {
		if _, err := strconv.Atoi(f.orderRaw); err != nil {
			orderErr = &FieldError{Field: "order", Message: "Display order must be a whole number"}
		}
	}
	return firstErr(
		required("name", "Name", f.Name),
		required("position", "Position", f.Position),
		required("email", "Email", f.Email),
		required("image", "Image URL", f.Image),
		orderErr,
	)
}

func (f BoardMemberForm) Fields() []Field {
	order := strconv.Itoa(f.Order)
	if f.orderRaw != "" {
		order = f.orderRaw
	}
	return []Field{
		{Name: "name", Label: "Name", Type: "text", Value: f.Name, Required: true},
		{Name: "position", Label: "Position", Type: "text", Value: f.Position, Required: true},
		{Name: "email", Label: "Email", Type: "email", Value: f.Email, Required: true},
		{Name: "image", Label: "Image URL", Type: "url", Value: f.Image, Required: true},
		{Name: "order", Label: "Display order", Type: "number", Value: order},
	}
}

type PastEventForm struct {
	Title       string
	Date        string
	Description string
	Images      []string
}

// ParsePastEventForm reads images one URL per line; blank lines are dropped.
func ParsePastEventForm(v url.Values) PastEventForm {
	return PastEventForm{
		Title:       value(v, "title"),
		Date:        value(v, "date"),
		Description: value(v, "description"),
		Images:      lines(v.Get("images")),
	}
}

func (f PastEventForm) Validate() error {
	return firstErr(
		required("title", "Title", f.Title),
		validDate("date", "Date", f.Date),
		required("description", "Description", f.Description),
	)
}

func (f PastEventForm) Fields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Type: "text", Value: f.Title, Required: true},
		{Name: "date", Label: "Date", Type: "date", Value: f.Date, Required: true},
		{Name: "description", Label: "Description", Type: "textarea", Value: f.Description, Required: true},
		{Name: "images", Label: "Image URLs (one per line)", Type: "textarea", Value: strings.Join(f.Images, "\n")},
	}
}

type UpcomingEventForm struct {
	Title            string
	Date             string
	Time             string
	Venue            string
	Description      string
	RegistrationOpen bool
}

func ParseUpcomingEventForm(v url.Values) UpcomingEventForm {
	return UpcomingEventForm{
		Title:            value(v, "title"),
		Date:             value(v, "date"),
		Time:             value(v, "time"),
		Venue:            value(v, "venue"),
		Description:      value(v, "description"),
		RegistrationOpen: checked(v, "registration_open"),
	}
}

func (f UpcomingEventForm) Validate() error {
	return firstErr(
		required("title", "Title", f.Title),
		validDate("date", "Date", f.Date),
		required("time", "Time", f.Time),
		required("venue", "Venue", f.Venue),
		required("description", "Description", f.Description),
	)
}

func (f UpcomingEventForm) Fields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Type: "text", Value: f.Title, Required: true},
		{Name: "date", Label: "Date", Type: "date", Value: f.Date, Required: true},
		{Name: "time", Label: "Time", Type: "text", Value: f.Time, Required: true},
		{Name: "venue", Label: "Venue", Type: "text", Value: f.Venue, Required: true},
		{Name: "description", Label: "Description", Type: "textarea", Value: f.Description, Required: true},
		{Name: "registration_open", Label: "Registration open", Type: "checkbox", Checked: f.RegistrationOpen},
	}
}

type EventKind string

const (
	PastEvent     EventKind = "past"
	UpcomingEvent EventKind = "upcoming"
)

// EventForm is either a past or an upcoming event form, selected by Kind.
type EventForm struct {
	Kind     EventKind
	Past     PastEventForm
	Upcoming UpcomingEventForm
}

func ParseEventForm(v url.Values) EventForm {
	kind := EventKind(value(v, "kind"))
	switch kind {
	case PastEvent:
		return EventForm{Kind: kind, Past: ParsePastEventForm(v)}
	case UpcomingEvent:
		return EventForm{Kind: kind, Upcoming: ParseUpcomingEventForm(v)}
	}
	return EventForm{Kind: kind}
}

func (f EventForm) Validate() error {
	switch f.Kind {
	case PastEvent:
		return f.Past.Validate()
	case UpcomingEvent:
		return f.Upcoming.Validate()
	}
	return &FieldError{Field: "kind", Message: "Event type must be past or upcoming"}
}

// Fields renders the kind selector followed by the active variant's fields.
func (f EventForm) Fields() []Field {
	kind := Field{
		Name: "kind", Label: "Event type", Type: "select", Value: string(f.Kind), Required: true,
		Options: []string{string(UpcomingEvent), string(PastEvent)},
	}
	switch f.Kind {
	case PastEvent:
		return append([]Field{kind}, f.Past.Fields()...)
	default:
		return append([]Field{kind}, f.Upcoming.Fields()...)
	}
}

type NewsForm struct {
	Title   string
	Date    string
	Excerpt string
	Content string
	Image   string
}

func ParseNewsForm(v url.Values) NewsForm {
	return NewsForm{
		Title:   value(v, "title"),
		Date:    value(v, "date"),
		Excerpt: value(v, "excerpt"),
		Content: strings.TrimSpace(v.Get("content")),
		Image:   value(v, "image"),
	}
}

func (f NewsForm) Validate() error {
	return firstErr(
		required("title", "Title", f.Title),
		validDate("date", "Date", f.Date),
		required("excerpt", "Excerpt", f.Excerpt),
		required("content", "Content", f.Content),
		required("image", "Image URL", f.Image),
	)
}

func (f NewsForm) Fields() []Field {
	return []Field{
		{Name: "title", Label: "Title", Type: "text", Value: f.Title, Required: true},
		{Name: "date", Label: "Date", Type: "date", Value: f.Date, Required: true},
		{Name: "excerpt", Label: "Excerpt", Type: "textarea", Value: f.Excerpt, Required: true},
		{Name: "content", Label: "Content (markdown)", Type: "textarea", Value: f.Content, Required: true},
		{Name: "image", Label: "Image URL", Type: "url", Value: f.Image, Required: true},
	}
}

type GalleryForm struct {
	URL     string
	Caption string
}

func ParseGalleryForm(v url.Values) GalleryForm {
	return GalleryForm{URL: value(v, "url"), Caption: value(v, "caption")}
}

func (f GalleryForm) Validate() error {
	return firstErr(
		required("url", "Image URL", f.URL),
		required("caption", "Caption", f.Caption),
	)
}

func (f GalleryForm) Fields() []Field {
	return []Field{
		{Name: "url", Label: "Image URL", Type: "url", Value: f.URL, Required: true},
		{Name: "caption", Label: "Caption", Type: "text", Value: f.Caption, Required: true},
	}
}

// SettingsForm edits the home page statistics.
type SettingsForm struct {
	ActiveMembers string
	TotalEvents   string
	LivesImpacted string
	AwardsWon     string
}

func ParseSettingsForm(v url.Values) SettingsForm {
	return SettingsForm{
		ActiveMembers: value(v, "active_members"),
		TotalEvents:   value(v, "total_events"),
		LivesImpacted: value(v, "lives_impacted"),
		AwardsWon:     value(v, "awards_won"),
	}
}

func SettingsFormFrom(s *entities.SiteSettings) SettingsForm {
	return SettingsForm{
		ActiveMembers: strconv.Itoa(s.ActiveMembers),
		TotalEvents:   strconv.Itoa(s.TotalEvents),
		LivesImpacted: strconv.Itoa(s.LivesImpacted),
		AwardsWon:     strconv.Itoa(s.AwardsWon),
	}
}

func (f SettingsForm) fields() []struct{ name, label, value string } {
	return []struct{ name, label, value string }{
		{"active_members", "Active members", f.ActiveMembers},
		{"total_events", "Total events", f.TotalEvents},
		{"lives_impacted", "Lives impacted", f.LivesImpacted},
		{"awards_won", "Awards won", f.AwardsWon},
	}
}

func (f SettingsForm) Validate() error {
	for _, fd := range f.fields() {
		n, err := strconv.Atoi(fd.value)
		if err != nil || n < 0 {
			return &FieldError{Field: fd.name, Message: fd.label + " must be a whole number of zero or more"}
		}
	}
	return nil
}

func (f SettingsForm) Fields() []Field {
	out := make([]Field, 0, 4)
	for _, fd := range f.fields() {
		out = append(out, Field{Name: fd.name, Label: fd.label, Type: "number", Value: fd.value, Required: true})
	}
	return out
}

// Input converts a validated form.
func (f SettingsForm) Input() *entities.UpdateSiteSettingsInput {
	atoi := func(s string) null.Int {
		n, _ := strconv.Atoi(s)
		return null.IntFrom(n)
	}
	return &entities.UpdateSiteSettingsInput{
		ActiveMembers: atoi(f.ActiveMembers),
		TotalEvents:   atoi(f.TotalEvents),
		LivesImpacted: atoi(f.LivesImpacted),
		AwardsWon:     atoi(f.AwardsWon),
	}
}
