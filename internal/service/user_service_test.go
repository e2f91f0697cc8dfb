package service

import (
	"context"
	"testing"

	"juicebox/internal/models"
	"juicebox/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, uint, repository.UserUpdate) (*models.User, error)
	listFn          func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, id uint, fields repository.UserUpdate) (*models.User, error) {
	return s.updateFn(ctx, id, fields)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn: func(_ context.Context, _ uint, _ repository.UserUpdate) (*models.User, error) {
			return &models.User{}, nil
		},
		listFn: func(_ context.Context) ([]models.User, error) { return nil, nil },
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, user *models.User) error {
		user.ID = 1
		created = user
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "albus",
		Password: "lemondrops123",
		Name:     "Albus Dumbledore",
		Location: "Hogwarts",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(1), user.ID)
	assert.True(t, user.Active)

	// The stored password must be a bcrypt hash of the input, never the
	// plaintext itself.
	assert.NotEqual(t, "lemondrops123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("lemondrops123")))
}

func TestUserService_Register_Validation(t *testing.T) {
	createCalled := false
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, _ *models.User) error {
		createCalled = true
		return nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"short username", RegisterInput{Username: "ab", Password: "longenough1", Name: "N"}},
		{"invalid characters", RegisterInput{Username: "bad name!", Password: "longenough1", Name: "N"}},
		{"short password", RegisterInput{Username: "albus", Password: "short", Name: "N"}},
		{"missing name", RegisterInput{Username: "albus", Password: "longenough1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			assertAppErrorCode(t, err, models.CodeValidation)
		})
	}
	assert.False(t, createCalled)
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "harry" {
			return &models.User{ID: 1, Username: "harry", Password: string(hashed), Active: true}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "harry", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Authenticate(ctx, "harry", "wrongpassword")
	assertAppErrorCode(t, err, models.CodeUnauthorized)

	// Unknown usernames and bad passwords are indistinguishable to the caller.
	_, err = svc.Authenticate(ctx, "nobody", "correcthorse")
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := noopUserRepo()
	var gotFields repository.UserUpdate
	repo.updateFn = func(_ context.Context, id uint, fields repository.UserUpdate) (*models.User, error) {
		gotFields = fields
		return &models.User{ID: id}, nil
	}

	svc := NewUserService(repo)
	password := "newsecret99"
	location := "The Burrow"
	_, err := svc.UpdateProfile(context.Background(), UpdateUserInput{
		UserID:   1,
		Password: &password,
		Location: &location,
	})
	require.NoError(t, err)

	require.NotNil(t, gotFields.Password)
	assert.NotEqual(t, "newsecret99", *gotFields.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*gotFields.Password), []byte("newsecret99")))
	require.NotNil(t, gotFields.Location)
	assert.Equal(t, "The Burrow", *gotFields.Location)
	assert.Nil(t, gotFields.Name)
}

func TestUserService_UpdateProfile_RejectsWeakPassword(t *testing.T) {
	updateCalled := false
	repo := noopUserRepo()
	repo.updateFn = func(_ context.Context, _ uint, _ repository.UserUpdate) (*models.User, error) {
		updateCalled = true
		return nil, nil
	}

	svc := NewUserService(repo)
	password := "short"
	_, err := svc.UpdateProfile(context.Background(), UpdateUserInput{UserID: 1, Password: &password})
	assertAppErrorCode(t, err, models.CodeValidation)
	assert.False(t, updateCalled)
}
