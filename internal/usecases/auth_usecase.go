package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"interact-club.backend/internal/domain/entities"
	domainerrors "interact-club.backend/internal/domain/errors"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/pkg/crypto"
	"interact-club.backend/pkg/jwt"
)

// TokenRevoker keeps the denylist of logged-out token ids.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	revoker    TokenRevoker
	now        func() time.Time
}

// NewAuthUsecase creates a new auth usecase. revoker may be nil, in which
// case logout is stateless and tokens live until they expire.
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, revoker TokenRevoker) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoker:    revoker,
		now:        time.Now,
	}
}

// EnsureAdmin creates the configured administrator or brings the stored row
// in line with the configuration.
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, email, name, passwordHash string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || passwordHash == "" {
		return nil, domainerrors.InvalidInput("admin email and password hash are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		user = &entities.User{
			Email:        email,
			Name:         name,
			PasswordHash: passwordHash,
			Role:         entities.UserRoleAdmin,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create admin: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Name == name && user.PasswordHash == passwordHash && user.Role == entities.UserRoleAdmin {
		return user, nil
	}
	user.Name = name
	user.PasswordHash = passwordHash
	user.Role = entities.UserRoleAdmin
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return user, nil
}

// Login authenticates the administrator and returns a signed token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) || user.Role != entities.UserRoleAdmin {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, _, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token: token,
		User:  user.Profile(),
	}, nil
}

// Authenticate validates a bearer token and checks it has not been revoked.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	if u.revoker != nil {
		revoked, err := u.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return nil, domainerrors.ErrTokenRevoked
		}
	}
	return claims, nil
}

// Logout revokes the token for the rest of its lifetime.
func (u *AuthUsecase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if u.revoker == nil || claims == nil {
		return nil
	}
	return u.revoker.Revoke(ctx, claims.ID, claims.Remaining(u.now()))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
