package user_test

import (
	"context"
	"sync"
	"testing"

	"skillswap/models"
	"skillswap/services/user"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil
	}
	if v, ok := updateDoc["name"].(string); ok {
		u.Name = v
	}
	if v, ok := updateDoc["image"].(string); ok {
		u.Image = v
	}
	if v, ok := updateDoc["timezone"].(string); ok {
		u.Timezone = v
	}
	if v, ok := updateDoc["skills"].([]string); ok {
		u.Skills = v
	}
	if v, ok := updateDoc["skillsWanted"].([]string); ok {
		u.SkillsWanted = v
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func registration() models.UserRegistrationInput {
	return models.UserRegistrationInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "correct horse",
		Skills:   []string{"go"},
	}
}

func TestRegister(t *testing.T) {
	svc := user.NewService(newFakeUserRepo(), nil)

	resp, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice@example.com", resp.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := user.NewService(newFakeUserRepo(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration())
	require.Error(t, err)
	require.Equal(t, user.CodeEmailTaken, user.CodeOf(err))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := user.NewService(newFakeUserRepo(), nil)

	input := registration()
	input.Password = ""
	_, err := svc.Register(context.Background(), input)
	require.Equal(t, user.CodeValidation, user.CodeOf(err))
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	// Email matching is case-insensitive; the stored hash never leaks.
	resp, err := svc.Authenticate(ctx, "ALICE@example.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	require.Equal(t, user.CodeInvalidCredentials, user.CodeOf(err))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct horse")
	require.Equal(t, user.CodeInvalidCredentials, user.CodeOf(err))
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, resp.ID, models.UserUpdateInput{
		Name:         "Alice B",
		SkillsWanted: []string{"rust"},
	})
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)
	require.Equal(t, []string{"rust"}, updated.SkillsWanted)
	require.Equal(t, []string{"go"}, updated.Skills) // untouched
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := user.NewService(newFakeUserRepo(), nil)

	_, err := svc.UpdateUser(context.Background(), "ghost", models.UserUpdateInput{Name: "X"})
	require.Equal(t, user.CodeUserNotFound, user.CodeOf(err))
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, nil)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, resp.ID))

	_, err = svc.GetUserByID(ctx, resp.ID)
	require.Equal(t, user.CodeUserNotFound, user.CodeOf(err))
}
