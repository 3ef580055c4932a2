package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
)

type messageResponse struct {
	Message string `json:"message"`
}

func itemPath(prefix string, id uuid.UUID) string {
	return prefix + "/" + url.PathEscape(id.String())
}

// Login exchanges credentials for a session token. A 401 is reported as
// ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*entities.AuthResponse, error) {
	var out entities.AuthResponse
	in := entities.LoginInput{Email: email, Password: password}
	if err := c.send(ctx, http.MethodPost, "/auth/login", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*entities.User, error) {
	var out entities.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListBoardMembers(ctx context.Context) ([]*entities.BoardMember, error) {
	var out []*entities.BoardMember
	err := c.do(ctx, http.MethodGet, "/board-members", nil, &out)
	return out, err
}

func (c *Client) CreateBoardMember(ctx context.Context, in *entities.CreateBoardMemberInput) (*entities.BoardMember, error) {
	var out entities.BoardMember
	if err := c.do(ctx, http.MethodPost, "/board-members", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBoardMember(ctx context.Context, id uuid.UUID, in *entities.UpdateBoardMemberInput) (*entities.BoardMember, error) {
	var out entities.BoardMember
	if err := c.do(ctx, http.MethodPut, itemPath("/board-members", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBoardMember(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, itemPath("/board-members", id), nil, &messageResponse{})
}

func (c *Client) ListPastEvents(ctx context.Context) ([]*entities.PastEvent, error) {
	var out []*entities.PastEvent
	err := c.do(ctx, http.MethodGet, "/events/past", nil, &out)
	return out, err
}

func (c *Client) CreatePastEvent(ctx context.Context, in *entities.CreatePastEventInput) (*entities.PastEvent, error) {
	var out entities.PastEvent
	if err := c.do(ctx, http.MethodPost, "/events/past", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePastEvent(ctx context.Context, id uuid.UUID, in *entities.UpdatePastEventInput) (*entities.PastEvent, error) {
	var out entities.PastEvent
	if err := c.do(ctx, http.MethodPut, itemPath("/events/past", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePastEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, itemPath("/events/past", id), nil, &messageResponse{})
}

func (c *Client) ListUpcomingEvents(ctx context.Context) ([]*entities.UpcomingEvent, error) {
	var out []*entities.UpcomingEvent
	err := c.do(ctx, http.MethodGet, "/events/upcoming", nil, &out)
	return out, err
}

func (c *Client) CreateUpcomingEvent(ctx context.Context, in *entities.CreateUpcomingEventInput) (*entities.UpcomingEvent, error) {
	var out entities.UpcomingEvent
	if err := c.do(ctx, http.MethodPost, "/events/upcoming", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUpcomingEvent(ctx context.Context, id uuid.UUID, in *entities.UpdateUpcomingEventInput) (*entities.UpcomingEvent, error) {
	var out entities.UpcomingEvent
	if err := c.do(ctx, http.MethodPut, itemPath("/events/upcoming", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUpcomingEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, itemPath("/events/upcoming", id), nil, &messageResponse{})
}

func (c *Client) ListNews(ctx context.Context) ([]*entities.NewsArticle, error) {
	var out []*entities.NewsArticle
	err := c.do(ctx, http.MethodGet, "/news", nil, &out)
	return out, err
}

func (c *Client) CreateNews(ctx context.Context, in *entities.CreateNewsInput) (*entities.NewsArticle, error) {
	var out entities.NewsArticle
	if err := c.do(ctx, http.MethodPost, "/news", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNews(ctx context.Context, id uuid.UUID, in *entities.UpdateNewsInput) (*entities.NewsArticle, error) {
	var out entities.NewsArticle
	if err := c.do(ctx, http.MethodPut, itemPath("/news", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNews(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, itemPath("/news", id), nil, &messageResponse{})
}

func (c *Client) ListGallery(ctx context.Context) ([]*entities.GalleryImage, error) {
	var out []*entities.GalleryImage
	err := c.do(ctx, http.MethodGet, "/gallery", nil, &out)
	return out, err
}

func (c *Client) CreateGalleryImage(ctx context.Context, in *entities.CreateGalleryImageInput) (*entities.GalleryImage, error) {
	var out entities.GalleryImage
	if err := c.do(ctx, http.MethodPost, "/gallery", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, itemPath("/gallery", id), nil, &messageResponse{})
}

func (c *Client) GetSettings(ctx context.Context) (*entities.SiteSettings, error) {
	var out entities.SiteSettings
	if err := c.do(ctx, http.MethodGet, "/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, in *entities.UpdateSiteSettingsInput) (*entities.SiteSettings, error) {
	var out entities.SiteSettings
	if err := c.do(ctx, http.MethodPut, "/settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact posts the public contact form and returns the server's
// acknowledgement.
func (c *Client) SubmitContact(ctx context.Context, in *entities.ContactSubmitInput) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/contact/submit", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) GetContactInfo(ctx context.Context) (*entities.ContactInfo, error) {
	var out entities.ContactInfo
	if err := c.do(ctx, http.MethodGet, "/contact/info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListContactSubmissions(ctx context.Context) ([]*entities.ContactSubmission, error) {
	var out []*entities.ContactSubmission
	err := c.do(ctx, http.MethodGet, "/contact/submissions", nil, &out)
	return out, err
}
