package usecases_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"interact-club.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock TokenRevoker
type MockTokenRevoker struct {
	mock.Mock
}

func (m *MockTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

// Mock ContactSubmissionRepository
type MockContactSubmissionRepository struct {
	mock.Mock
}

func (m *MockContactSubmissionRepository) Create(ctx context.Context, submission *entities.ContactSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockContactSubmissionRepository) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ContactSubmission), args.Error(1)
}

// Mock SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSiteSettings(ctx context.Context) (*entities.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SiteSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSiteSettings(ctx context.Context, settings *entities.SiteSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetContactInfo(ctx context.Context) (*entities.ContactInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ContactInfo), args.Error(1)
}

func (m *MockSettingsRepository) SaveContactInfo(ctx context.Context, info *entities.ContactInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

// recordingNotifier captures notifications without a mock expectation,
// since they arrive on a background goroutine.
type recordingNotifier struct {
	mu      sync.Mutex
	got     []*entities.ContactSubmission
	err     error
	ctxErrs []error
	stall   bool
}

// NotifyContact records the call; a stalled notifier waits for its deadline.
func (n *recordingNotifier) NotifyContact(ctx context.Context, s *entities.ContactSubmission) error {
	n.mu.Lock()
	n.got = append(n.got, s)
	n.ctxErrs = append(n.ctxErrs, ctx.Err())
	stall := n.stall
	n.mu.Unlock()
	if stall {
		<-ctx.Done()
		return ctx.Err()
	}
	return n.err
}

func (n *recordingNotifier) calls() []*entities.ContactSubmission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*entities.ContactSubmission(nil), n.got...)
}
