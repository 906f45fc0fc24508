package user

import (
	"context"
	"time"

	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, newError(CodeUserNotFound, "user not found")
	}
	return u, nil
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, newError(CodeUserNotFound, "user not found")
	}
	return u, nil
}

// UpdateUser applies a partial profile update. Zero-valued fields are left
// untouched.
func (s *DefaultUserService) UpdateUser(ctx context.Context, userID string, input models.UserUpdateInput) (*models.User, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Image != "" {
		set["image"] = input.Image
	}
	if input.Timezone != "" {
		set["timezone"] = input.Timezone
	}
	if input.Skills != nil {
		set["skills"] = input.Skills
	}
	if input.SkillsWanted != nil {
		set["skillsWanted"] = input.SkillsWanted
	}

	if err := s.Repo.UpdateSetDocument(userID, set); err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, userID)
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	return s.Repo.Delete(userID)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll()
}
