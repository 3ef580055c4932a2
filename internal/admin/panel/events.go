package panel

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"golang.org/x/sync/errgroup"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/apiclient"
)

type EventAPI interface {
	ListPastEvents(ctx context.Context) ([]*entities.PastEvent, error)
	CreatePastEvent(ctx context.Context, in *entities.CreatePastEventInput) (*entities.PastEvent, error)
	UpdatePastEvent(ctx context.Context, id uuid.UUID, in *entities.UpdatePastEventInput) (*entities.PastEvent, error)
	DeletePastEvent(ctx context.Context, id uuid.UUID) error
	ListUpcomingEvents(ctx context.Context) ([]*entities.UpcomingEvent, error)
	CreateUpcomingEvent(ctx context.Context, in *entities.CreateUpcomingEventInput) (*entities.UpcomingEvent, error)
	UpdateUpcomingEvent(ctx context.Context, id uuid.UUID, in *entities.UpdateUpcomingEventInput) (*entities.UpcomingEvent, error)
	DeleteUpcomingEvent(ctx context.Context, id uuid.UUID) error
}

// EventRow is one line of the combined events list. Exactly one of Past and
// Upcoming is set, matching Kind.
type EventRow struct {
	Kind     EventKind
	Past     *entities.PastEvent
	Upcoming *entities.UpcomingEvent
}

func (r EventRow) ID() uuid.UUID {
	if r.Kind == PastEvent {
		return r.Past.ID
	}
	return r.Upcoming.ID
}

func (r EventRow) Title() string {
	if r.Kind == PastEvent {
		return r.Past.Title
	}
	return r.Upcoming.Title
}

func (r EventRow) Date() string {
	if r.Kind == PastEvent {
		return r.Past.Date
	}
	return r.Upcoming.Date
}

// EventKey builds the row key "<kind>:<id>".
func EventKey(kind EventKind, id uuid.UUID) string {
	return string(kind) + ":" + id.String()
}

func splitEventKey(key string) (EventKind, uuid.UUID, error) {
	kind, rawID, ok := strings.Cut(key, ":")
	if !ok || (EventKind(kind) != PastEvent && EventKind(kind) != UpcomingEvent) {
		return "", uuid.Nil, &apiclient.Error{Kind: apiclient.ErrValidation, Message: "Record not found"}
	}
	id, err := parseKey(rawID)
	return EventKind(kind), id, err
}

// Events manages past and upcoming events in one panel.
type Events struct{ API EventAPI }

func (Events) Name() string { return "events" }

// List fetches both collections concurrently. Upcoming events come first.
func (r Events) List(ctx context.Context) ([]EventRow, error) {
	var (
		past     []*entities.PastEvent
		upcoming []*entities.UpcomingEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		past, err = r.API.ListPastEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = r.API.ListUpcomingEvents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]EventRow, 0, len(past)+len(upcoming))
	for _, e := range upcoming {
		rows = append(rows, EventRow{Kind: UpcomingEvent, Upcoming: e})
	}
	for _, e := range past {
		rows = append(rows, EventRow{Kind: PastEvent, Past: e})
	}
	return rows, nil
}

func (Events) Key(r EventRow) string { return EventKey(r.Kind, r.ID()) }

func (Events) NewForm() EventForm {
	return EventForm{Kind: UpcomingEvent, Upcoming: UpcomingEventForm{RegistrationOpen: true}}
}

func (Events) EditForm(r EventRow) EventForm {
	if r.Kind == PastEvent {
		e := r.Past
		return EventForm{Kind: PastEvent, Past: PastEventForm{
			Title: e.Title, Date: e.Date, Description: e.Description,
			Images: append([]string(nil), e.Images...),
		}}
	}
	e := r.Upcoming
	return EventForm{Kind: UpcomingEvent, Upcoming: UpcomingEventForm{
		Title: e.Title, Date: e.Date, Time: e.Time, Venue: e.Venue,
		Description: e.Description, RegistrationOpen: e.RegistrationOpen,
	}}
}

func (r Events) Create(ctx context.Context, f EventForm) error {
	switch f.Kind {
	case PastEvent:
		p := f.Past
		_, err := r.API.CreatePastEvent(ctx, &entities.CreatePastEventInput{
			Title: p.Title, Date: p.Date, Description: p.Description, Images: p.Images,
		})
		return err
	case UpcomingEvent:
		u := f.Upcoming
		_, err := r.API.CreateUpcomingEvent(ctx, &entities.CreateUpcomingEventInput{
			Title: u.Title, Date: u.Date, Time: u.Time, Venue: u.Venue, Description: u.Description,
			RegistrationOpen: null.BoolFrom(u.RegistrationOpen),
		})
		return err
	}
	return f.Validate()
}

// Update writes every field of the form. The event kind of an existing
// record cannot change.
func (r Events) Update(ctx context.Context, key string, f EventForm) error {
	kind, id, err := splitEventKey(key)
	if err != nil {
		return err
	}
	if kind != f.Kind {
		return &FieldError{Field: "kind", Message: "The type of an existing event cannot be changed"}
	}
	if kind == PastEvent {
		p := f.Past
		images := append([]string{}, p.Images...)
		_, err = r.API.UpdatePastEvent(ctx, id, &entities.UpdatePastEventInput{
			Title:       null.StringFrom(p.Title),
			Date:        null.StringFrom(p.Date),
			Description: null.StringFrom(p.Description),
			Images:      &images,
		})
		return err
	}
	u := f.Upcoming
	_, err = r.API.UpdateUpcomingEvent(ctx, id, &entities.UpdateUpcomingEventInput{
		Title:            null.StringFrom(u.Title),
		Date:             null.StringFrom(u.Date),
		Time:             null.StringFrom(u.Time),
		Venue:            null.StringFrom(u.Venue),
		Description:      null.StringFrom(u.Description),
		RegistrationOpen: null.BoolFrom(u.RegistrationOpen),
	})
	return err
}

func (r Events) Delete(ctx context.Context, key string) error {
	kind, id, err := splitEventKey(key)
	if err != nil {
		return err
	}
	if kind == PastEvent {
		return r.API.DeletePastEvent(ctx, id)
	}
	return r.API.DeleteUpcomingEvent(ctx, id)
}
