package user

import (
	"context"

	userRepo "skillswap/database/repository/user"
	"skillswap/models"

	"github.com/go-redis/redis/v8"
)

// UserService covers account lifecycle and authentication.
type UserService interface {
	Register(ctx context.Context, input models.UserRegistrationInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, userID, token string) error

	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, input models.UserUpdateInput) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error

	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// DefaultUserService is the production implementation. AuthCache holds
// revoked-token markers consulted by the auth middleware.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

func NewService(repo userRepo.UserRepository, authCache *redis.Client) *DefaultUserService {
	return &DefaultUserService{Repo: repo, AuthCache: authCache}
}
