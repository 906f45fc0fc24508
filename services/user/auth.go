package user

import (
	"context"
	"strings"
	"time"

	"skillswap/models"
	"skillswap/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a new account and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, input models.UserRegistrationInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || input.Name == "" {
		return nil, newError(CodeValidation, "name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(CodeEmailTaken, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Timezone:     timezone,
		Skills:       input.Skills,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

// Authenticate verifies the email/password pair and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, newError(CodeInvalidCredentials, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, newError(CodeInvalidCredentials, "invalid email or password")
	}
	return s.issueToken(u)
}

// SignOut revokes the presented token. The auth middleware rejects tokens
// whose hash appears in the revocation cache.
func (s *DefaultUserService) SignOut(ctx context.Context, userID, token string) error {
	if s.AuthCache == nil {
		return nil
	}
	key := "revoked:" + utils.HashToken(token)
	return s.AuthCache.Set(ctx, key, userID, tokenTTL).Err()
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}
