// Package service contains the application's business logic on top of
// the repository layer.
package service

import (
	"context"

	"juicebox/internal/models"
	"juicebox/internal/repository"
	"juicebox/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Location string
}

type UpdateUserInput struct {
	UserID   uint
	Name     *string
	Location *string
	Password *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a user with a bcrypt-hashed password. Username
// collisions surface from the unique constraint, never from a
// check-then-act existence probe.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Password: string(hashed),
		Name:     in.Name,
		Location: in.Location,
		Active:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateProfile applies a partial patch to the caller's own record.
// Passwords are re-hashed before they reach the store.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	fields := repository.UserUpdate{
		Name:     in.Name,
		Location: in.Location,
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		hashedStr := string(hashed)
		fields.Password = &hashedStr
	}

	return s.userRepo.Update(ctx, in.UserID, fields)
}
