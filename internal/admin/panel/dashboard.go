package panel

import (
	"context"

	"golang.org/x/sync/errgroup"
	"interact-club.backend/internal/domain/entities"
)

type DashboardAPI interface {
	GetSettings(ctx context.Context) (*entities.SiteSettings, error)
	ListBoardMembers(ctx context.Context) ([]*entities.BoardMember, error)
	ListPastEvents(ctx context.Context) ([]*entities.PastEvent, error)
	ListUpcomingEvents(ctx context.Context) ([]*entities.UpcomingEvent, error)
	ListNews(ctx context.Context) ([]*entities.NewsArticle, error)
	ListGallery(ctx context.Context) ([]*entities.GalleryImage, error)
	ListContactSubmissions(ctx context.Context) ([]*entities.ContactSubmission, error)
}

// Dashboard is the landing page summary.
type Dashboard struct {
	Settings       *entities.SiteSettings
	BoardMembers   int
	PastEvents     int
	UpcomingEvents int
	News           int
	Gallery        int
	Submissions    int
}

// LoadDashboard fetches settings and record counts concurrently. The first
// failure cancels the rest and is returned.
func LoadDashboard(ctx context.Context, api DashboardAPI) (*Dashboard, error) {
	d := &Dashboard{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Settings, err = api.GetSettings(ctx)
		return err
	})
	g.Go(count(&d.BoardMembers, func() (int, error) { l, err := api.ListBoardMembers(ctx); return len(l), err }))
	g.Go(count(&d.PastEvents, func() (int, error) { l, err := api.ListPastEvents(ctx); return len(l), err }))
	g.Go(count(&d.UpcomingEvents, func() (int, error) { l, err := api.ListUpcomingEvents(ctx); return len(l), err }))
	g.Go(count(&d.News, func() (int, error) { l, err := api.ListNews(ctx); return len(l), err }))
	g.Go(count(&d.Gallery, func() (int, error) { l, err := api.ListGallery(ctx); return len(l), err }))
	g.Go(count(&d.Submissions, func() (int, error) { l, err := api.ListContactSubmissions(ctx); return len(l), err }))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func count(dst *int, fetch func() (int, error)) func() error {
	return func() error {
		n, err := fetch()
		*dst = n
		return err
	}
}
