package panel

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/apiclient"
)

// parseKey turns a row key into a record id. A key that is not an id can
// never exist on the server and is reported the way a 404 would be.
func parseKey(key string) (uuid.UUID, error) {
	id, err := uuid.Parse(key)
	if err != nil {
		return uuid.Nil, &apiclient.Error{Kind: apiclient.ErrValidation, Message: "Record not found"}
	}
	return id, nil
}

type BoardMemberAPI interface {
	ListBoardMembers(ctx context.Context) ([]*entities.BoardMember, error)
	CreateBoardMember(ctx context.Context, in *entities.CreateBoardMemberInput) (*entities.BoardMember, error)
	UpdateBoardMember(ctx context.Context, id uuid.UUID, in *entities.UpdateBoardMemberInput) (*entities.BoardMember, error)
	DeleteBoardMember(ctx context.Context, id uuid.UUID) error
}

type BoardMembers struct{ API BoardMemberAPI }

func (BoardMembers) Name() string { return "board-members" }

func (r BoardMembers) List(ctx context.Context) ([]*entities.BoardMember, error) {
	return r.API.ListBoardMembers(ctx)
}

func (BoardMembers) Key(m *entities.BoardMember) string { return m.ID.String() }

func (BoardMembers) NewForm() BoardMemberForm { return BoardMemberForm{} }

func (BoardMembers) EditForm(m *entities.BoardMember) BoardMemberForm {
	return BoardMemberForm{Name: m.Name, Position: m.Position, Email: m.Email, Image: m.Image, Order: m.Order}
}

func (r BoardMembers) Create(ctx context.Context, f BoardMemberForm) error {
	_, err := r.API.CreateBoardMember(ctx, &entities.CreateBoardMemberInput{
		Name: f.Name, Position: f.Position, Email: f.Email, Image: f.Image, Order: f.Order,
	})
	return err
}

func (r BoardMembers) Update(ctx context.Context, key string, f BoardMemberForm) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	_, err = r.API.UpdateBoardMember(ctx, id, &entities.UpdateBoardMemberInput{
		Name:     null.StringFrom(f.Name),
		Position: null.StringFrom(f.Position),
		Email:    null.StringFrom(f.Email),
		Image:    null.StringFrom(f.Image),
		Order:    null.IntFrom(f.Order),
	})
	return err
}

func (r BoardMembers) Delete(ctx context.Context, key string) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	return r.API.DeleteBoardMember(ctx, id)
}

type NewsAPI interface {
	ListNews(ctx context.Context) ([]*entities.NewsArticle, error)
	CreateNews(ctx context.Context, in *entities.CreateNewsInput) (*entities.NewsArticle, error)
	UpdateNews(ctx context.Context, id uuid.UUID, in *entities.UpdateNewsInput) (*entities.NewsArticle, error)
	DeleteNews(ctx context.Context, id uuid.UUID) error
}

type News struct{ API NewsAPI }

func (News) Name() string { return "news" }

func (r News) List(ctx context.Context) ([]*entities.NewsArticle, error) {
	return r.API.ListNews(ctx)
}

func (News) Key(a *entities.NewsArticle) string { return a.ID.String() }

func (News) NewForm() NewsForm { return NewsForm{} }

func (News) EditForm(a *entities.NewsArticle) NewsForm {
	return NewsForm{Title: a.Title, Date: a.Date, Excerpt: a.Excerpt, Content: a.Content, Image: a.Image}
}

func (r News) Create(ctx context.Context, f NewsForm) error {
	_, err := r.API.CreateNews(ctx, &entities.CreateNewsInput{
		Title: f.Title, Date: f.Date, Excerpt: f.Excerpt, Content: f.Content, Image: f.Image,
	})
	return err
}

func (r News) Update(ctx context.Context, key string, f NewsForm) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	_, err = r.API.UpdateNews(ctx, id, &entities.UpdateNewsInput{
		Title:   null.StringFrom(f.Title),
		Date:    null.StringFrom(f.Date),
		Excerpt: null.StringFrom(f.Excerpt),
		Content: null.StringFrom(f.Content),
		Image:   null.StringFrom(f.Image),
	})
	return err
}

func (r News) Delete(ctx context.Context, key string) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	return r.API.DeleteNews(ctx, id)
}

type GalleryAPI interface {
	ListGallery(ctx context.Context) ([]*entities.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, in *entities.CreateGalleryImageInput) (*entities.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}

// Gallery supports create and delete only.
type Gallery struct{ API GalleryAPI }

func (Gallery) Name() string { return "gallery" }

func (r Gallery) List(ctx context.Context) ([]*entities.GalleryImage, error) {
	return r.API.ListGallery(ctx)
}

func (Gallery) Key(g *entities.GalleryImage) string { return g.ID.String() }

func (Gallery) NewForm() GalleryForm { return GalleryForm{} }

func (Gallery) EditForm(g *entities.GalleryImage) GalleryForm {
	return GalleryForm{URL: g.URL, Caption: g.Caption}
}

func (r Gallery) Create(ctx context.Context, f GalleryForm) error {
	_, err := r.API.CreateGalleryImage(ctx, &entities.CreateGalleryImageInput{URL: f.URL, Caption: f.Caption})
	return err
}

func (r Gallery) Delete(ctx context.Context, key string) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}
	return r.API.DeleteGalleryImage(ctx, id)
}
