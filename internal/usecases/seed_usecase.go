package usecases

import (
	"context"
	"fmt"

	"interact-club.backend/internal/domain/repositories"
)

// SeedResult reports what a seed run inserted.
type SeedResult struct {
	Seeded         bool `json:"seeded"`
	BoardMembers   int  `json:"board_members"`
	PastEvents     int  `json:"past_events"`
	UpcomingEvents int  `json:"upcoming_events"`
	News           int  `json:"news"`
	Gallery        int  `json:"gallery"`
}

// SeedUsecase loads the sample content into an empty store.
type SeedUsecase struct {
	uow      repositories.UnitOfWork
	board    repositories.BoardMemberRepository
	past     repositories.PastEventRepository
	upcoming repositories.UpcomingEventRepository
	news     repositories.NewsRepository
	gallery  repositories.GalleryRepository
}

func NewSeedUsecase(
	uow repositories.UnitOfWork,
	board repositories.BoardMemberRepository,
	past repositories.PastEventRepository,
	upcoming repositories.UpcomingEventRepository,
	news repositories.NewsRepository,
	gallery repositories.GalleryRepository,
) *SeedUsecase {
	return &SeedUsecase{
		uow:      uow,
		board:    board,
		past:     past,
		upcoming: upcoming,
		news:     news,
		gallery:  gallery,
	}
}

// Seed inserts the sample content when there are no board members yet.
// Everything is written in one transaction.
func (u *SeedUsecase) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		n, err := u.board.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, m := range seedBoardMembers() {
			if err := u.board.Create(ctx, m); err != nil {
				return fmt.Errorf("seed board member %q: %w", m.Name, err)
			}
			result.BoardMembers++
		}
		for _, e := range seedPastEvents() {
			if err := u.past.Create(ctx, e); err != nil {
				return fmt.Errorf("seed past event %q: %w", e.Title, err)
			}
			result.PastEvents++
		}
		for _, e := range seedUpcomingEvents() {
			if err := u.upcoming.Create(ctx, e); err != nil {
				return fmt.Errorf("seed upcoming event %q: %w", e.Title, err)
			}
			result.UpcomingEvents++
		}
		for _, a := range seedNews() {
			if err := u.news.Create(ctx, a); err != nil {
				return fmt.Errorf("seed news %q: %w", a.Title, err)
			}
			result.News++
		}
		for _, g := range seedGallery() {
			if err := u.gallery.Create(ctx, g); err != nil {
				return fmt.Errorf("seed gallery %q: %w", g.Caption, err)
			}
			result.Gallery++
		}
		result.Seeded = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
