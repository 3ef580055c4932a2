package usecases

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"interact-club.backend/internal/domain/entities"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/pkg/logger"
	"interact-club.backend/pkg/richtext"
)

// DefaultNotifyTimeout bounds a single contact notification.
const DefaultNotifyTimeout = 15 * time.Second

// ContactNotifier forwards a new submission to the club inbox.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, submission *entities.ContactSubmission) error
}

// ContactUsecase handles the public contact form and the published contact block.
type ContactUsecase struct {
	submissions repositories.ContactSubmissionRepository
	settings    repositories.SettingsRepository
	notifier    ContactNotifier
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewContactUsecase(
	submissions repositories.ContactSubmissionRepository,
	settings repositories.SettingsRepository,
	notifier ContactNotifier,
) *ContactUsecase {
	return &ContactUsecase{
		submissions: submissions,
		settings:    settings,
		notifier:    notifier,
		timeout:     DefaultNotifyTimeout,
	}
}

// WithNotifyTimeout replaces the notification deadline. Non-positive values
// keep the current one.
func (u *ContactUsecase) WithNotifyTimeout(d time.Duration) *ContactUsecase {
	if d > 0 {
		u.timeout = d
	}
	return u
}

// Submit stores a sanitized submission and notifies the inbox in the
// background. Notification failures are logged only.
func (u *ContactUsecase) Submit(ctx context.Context, input *entities.ContactSubmitInput) (*entities.ContactSubmission, error) {
	cleaned := entities.ContactSubmitInput{
		Name:    richtext.Plain(input.Name),
		Email:   input.Email,
		Subject: richtext.Plain(input.Subject),
		Message: richtext.Plain(input.Message),
	}
	if err := cleaned.Validate(); err != nil {
		return nil, err
	}

	submission := &entities.ContactSubmission{
		Name:    cleaned.Name,
		Email:   cleaned.Email,
		Subject: cleaned.Subject,
		Message: cleaned.Message,
		Status:  entities.ContactStatusNew,
	}
	if err := u.submissions.Create(ctx, submission); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
		u.wg.Add(1)
		go func() {
			defer u.wg.Done()
			defer cancel()
			if err := u.notifier.NotifyContact(notifyCtx, submission); err != nil {
				logger.Warn(notifyCtx, "contact notification failed",
					zap.String("submission_id", submission.ID.String()),
					zap.Error(err),
				)
			}
		}()
	}
	return submission, nil
}

// Wait blocks until in-flight notifications finish.
func (u *ContactUsecase) Wait() {
	u.wg.Wait()
}

func (u *ContactUsecase) ListSubmissions(ctx context.Context) ([]*entities.ContactSubmission, error) {
	return u.submissions.List(ctx)
}

func (u *ContactUsecase) GetInfo(ctx context.Context) (*entities.ContactInfo, error) {
	return u.settings.GetContactInfo(ctx)
}

// UpdateInfo applies a partial update to the contact block.
func (u *ContactUsecase) UpdateInfo(ctx context.Context, input *entities.UpdateContactInfoInput) (*entities.ContactInfo, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	info, err := u.settings.GetContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	input.Apply(info)
	if err := u.settings.SaveContactInfo(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
