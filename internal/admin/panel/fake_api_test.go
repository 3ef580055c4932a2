package panel

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/apiclient"
)

func notFound() error {
	return &apiclient.Error{Kind: apiclient.ErrValidation, Status: 404, Code: "NOT_FOUND", Message: "Record not found"}
}

func unauthorized() error {
	return &apiclient.Error{Kind: apiclient.ErrUnauthorized, Status: 401, Code: "UNAUTHORIZED", Message: "Token expired"}
}

// fakeAPI is an in-memory stand-in for the remote API.
type fakeAPI struct {
	mu       sync.Mutex
	board    []*entities.BoardMember
	past     []*entities.PastEvent
	upcoming []*entities.UpcomingEvent
	news     []*entities.NewsArticle
	gallery  []*entities.GalleryImage

	// fail, when set, is returned by every call.
	fail error
	// started and block, when set, hold board member writes until released.
	started chan struct{}
	block   chan struct{}

	lastBoardUpdate *entities.UpdateBoardMemberInput
	lastPastUpdate  *entities.UpdatePastEventInput
	lastUpcoming    *entities.CreateUpcomingEventInput
	listCalls       int
}

func (f *fakeAPI) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail
}

func (f *fakeAPI) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAPI) ListBoardMembers(context.Context) ([]*entities.BoardMember, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := append([]*entities.BoardMember(nil), f.board...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeAPI) CreateBoardMember(_ context.Context, in *entities.CreateBoardMemberInput) (*entities.BoardMember, error) {
	f.wait()
	if err := f.err(); err != nil {
		return nil, err
	}
	m := &entities.BoardMember{ID: uuid.New(), Name: in.Name, Position: in.Position, Email: in.Email, Image: in.Image, Order: in.Order}
	f.mu.Lock()
	f.board = append(f.board, m)
	f.mu.Unlock()
	return m, nil
}

func (f *fakeAPI) UpdateBoardMember(_ context.Context, id uuid.UUID, in *entities.UpdateBoardMemberInput) (*entities.BoardMember, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBoardUpdate = in
	for _, m := range f.board {
		if m.ID == id {
			in.Apply(m)
			return m, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) DeleteBoardMember(_ context.Context, id uuid.UUID) error {
	f.wait()
	if err := f.err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.board {
		if m.ID == id {
			f.board = append(f.board[:i], f.board[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) ListPastEvents(context.Context) ([]*entities.PastEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.PastEvent(nil), f.past...), nil
}

func (f *fakeAPI) CreatePastEvent(_ context.Context, in *entities.CreatePastEventInput) (*entities.PastEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	e := &entities.PastEvent{ID: uuid.New(), Title: in.Title, Date: in.Date, Description: in.Description, Images: in.Images}
	f.mu.Lock()
	f.past = append(f.past, e)
	f.mu.Unlock()
	return e, nil
}

func (f *fakeAPI) UpdatePastEvent(_ context.Context, id uuid.UUID, in *entities.UpdatePastEventInput) (*entities.PastEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPastUpdate = in
	for _, e := range f.past {
		if e.ID == id {
			in.Apply(e)
			return e, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) DeletePastEvent(_ context.Context, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.past {
		if e.ID == id {
			f.past = append(f.past[:i], f.past[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) ListUpcomingEvents(context.Context) ([]*entities.UpcomingEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.UpcomingEvent(nil), f.upcoming...), nil
}

func (f *fakeAPI) CreateUpcomingEvent(_ context.Context, in *entities.CreateUpcomingEventInput) (*entities.UpcomingEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	e := &entities.UpcomingEvent{
		ID: uuid.New(), Title: in.Title, Date: in.Date, Time: in.Time, Venue: in.Venue,
		Description: in.Description, RegistrationOpen: in.IsRegistrationOpen(),
	}
	f.mu.Lock()
	f.lastUpcoming = in
	f.upcoming = append(f.upcoming, e)
	f.mu.Unlock()
	return e, nil
}

func (f *fakeAPI) UpdateUpcomingEvent(_ context.Context, id uuid.UUID, in *entities.UpdateUpcomingEventInput) (*entities.UpcomingEvent, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.upcoming {
		if e.ID == id {
			if in.Title.Valid {
				e.Title = in.Title.String
			}
			if in.RegistrationOpen.Valid {
				e.RegistrationOpen = in.RegistrationOpen.Bool
			}
			return e, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) DeleteUpcomingEvent(_ context.Context, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.upcoming {
		if e.ID == id {
			f.upcoming = append(f.upcoming[:i], f.upcoming[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) ListNews(context.Context) ([]*entities.NewsArticle, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.NewsArticle(nil), f.news...), nil
}

func (f *fakeAPI) CreateNews(_ context.Context, in *entities.CreateNewsInput) (*entities.NewsArticle, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	a := &entities.NewsArticle{ID: uuid.New(), Title: in.Title, Date: in.Date, Excerpt: in.Excerpt, Content: in.Content, Image: in.Image}
	f.mu.Lock()
	f.news = append(f.news, a)
	f.mu.Unlock()
	return a, nil
}

func (f *fakeAPI) UpdateNews(_ context.Context, id uuid.UUID, in *entities.UpdateNewsInput) (*entities.NewsArticle, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.news {
		if a.ID == id {
			if in.Title.Valid {
				a.Title = in.Title.String
			}
			if in.Content.Valid {
				a.Content = in.Content.String
			}
			return a, nil
		}
	}
	return nil, notFound()
}

func (f *fakeAPI) DeleteNews(_ context.Context, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.news {
		if a.ID == id {
			f.news = append(f.news[:i], f.news[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) ListGallery(context.Context) ([]*entities.GalleryImage, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.GalleryImage(nil), f.gallery...), nil
}

func (f *fakeAPI) CreateGalleryImage(_ context.Context, in *entities.CreateGalleryImageInput) (*entities.GalleryImage, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	g := &entities.GalleryImage{ID: uuid.New(), URL: in.URL, Caption: in.Caption}
	f.mu.Lock()
	f.gallery = append(f.gallery, g)
	f.mu.Unlock()
	return g, nil
}

func (f *fakeAPI) DeleteGalleryImage(_ context.Context, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, g := range f.gallery {
		if g.ID == id {
			f.gallery = append(f.gallery[:i], f.gallery[i+1:]...)
			return nil
		}
	}
	return notFound()
}

func (f *fakeAPI) GetSettings(context.Context) (*entities.SiteSettings, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	return entities.DefaultSiteSettings(), nil
}

func (f *fakeAPI) ListContactSubmissions(context.Context) ([]*entities.ContactSubmission, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	return []*entities.ContactSubmission{{ID: uuid.New(), Name: "Asha", Status: entities.ContactStatusNew}}, nil
}

func (f *fakeAPI) setFail(err error) {
	f.mu.Lock()
	f.fail = err
	f.mu.Unlock()
}
