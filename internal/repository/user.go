package repository

import (
	"context"
	"errors"
	"strings"

	"juicebox/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uint, fields UserUpdate) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserUpdate carries a partial patch; nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Password *string
	Name     *string
	Location *string
	Active   *bool
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateUsernameError(user.Username)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByUsername returns (nil, nil) when no user matches; the auth
// collaborator treats absence as a failed login, not an error.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields UserUpdate) (*models.User, error) {
	updates := map[string]interface{}{}
	if fields.Username != nil {
		updates["username"] = *fields.Username
	}
	if fields.Password != nil {
		updates["password"] = *fields.Password
	}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Location != nil {
		updates["location"] = *fields.Location
	}
	if fields.Active != nil {
		updates["active"] = *fields.Active
	}
	if len(updates) == 0 {
		return nil, models.NewNoFieldsToUpdateError()
	}

	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) && fields.Username != nil {
				return models.NewDuplicateUsernameError(*fields.Username)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// isForeignKeyError checks if a DB error is a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL foreign key violation SQLSTATE 23503
	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "23503")
}
