package services

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

type CreateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserService interface {
	CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error)
	UpdateUser(db *gorm.DB, actor models.Actor, userID uuid.UUID, input UpdateUserInput) (*models.User, error)
	DeleteUser(db *gorm.DB, actor models.Actor, userID uuid.UUID) error
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

// CreateUser registers a new user. Registration is public; an invalid or
// missing role falls back to "normal".
func (s *UserServiceImpl) CreateUser(db *gorm.DB, input CreateUserInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, ValidationError("Please fill in all fields")
	}

	taken, err := usernameTaken(db, input.Username, uuid.Nil)
	if err != nil {
		return nil, InternalError(err)
	}
	if taken {
		return nil, ConflictError("Username already exists")
	}

	taken, err = emailTaken(db, input.Email, uuid.Nil)
	if err != nil {
		return nil, InternalError(err)
	}
	if taken {
		return nil, ConflictError("Email already exists")
	}

	role := input.Role
	if !models.ValidRole(role) {
		role = models.RoleNormal
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, InternalError(err)
	}

	user := models.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, InternalError(err)
	}

	return &user, nil
}

// UpdateUser applies the supplied fields to an existing user. Only admins
// may change roles; username and email changes re-check global uniqueness
// excluding the record itself. The stored hash is left untouched unless a
// new plaintext password is supplied.
func (s *UserServiceImpl) UpdateUser(db *gorm.DB, actor models.Actor, userID uuid.UUID, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NotFoundError("User does not exist")
		}
		return nil, InternalError(err)
	}

	if input.Role != "" && !IsAdmin(actor) {
		return nil, PermissionError("Only admins can update user roles")
	}

	if input.Username != "" {
		taken, err := usernameTaken(db, input.Username, userID)
		if err != nil {
			return nil, InternalError(err)
		}
		if taken {
			return nil, ConflictError("Username already exists")
		}
		user.Username = input.Username
	}

	if input.Email != "" {
		taken, err := emailTaken(db, input.Email, userID)
		if err != nil {
			return nil, InternalError(err)
		}
		if taken {
			return nil, ConflictError("Email already exists")
		}
		user.Email = input.Email
	}

	if input.Password != "" {
		hashed, err := HashPassword(input.Password)
		if err != nil {
			return nil, InternalError(err)
		}
		user.Password = hashed
	}

	if input.Role != "" {
		user.Role = input.Role
	}

	user.UpdatedAt = time.Now()
	if err := db.Save(&user).Error; err != nil {
		return nil, InternalError(err)
	}

	return &user, nil
}

// DeleteUser removes a user and cascades to every dependent record.
func (s *UserServiceImpl) DeleteUser(db *gorm.DB, actor models.Actor, userID uuid.UUID) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return NotFoundError("User does not exist")
		}
		return InternalError(err)
	}

	if !IsAdmin(actor) {
		return PermissionError("Only admins can delete users")
	}

	if err := repositories.DeleteUserCascade(db, userID); err != nil {
		return InternalError(err)
	}

	return nil
}

func usernameTaken(db *gorm.DB, username string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

func emailTaken(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}
