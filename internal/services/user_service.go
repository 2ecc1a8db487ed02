package services

import (
	"fmt"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserUpdate carries the fields of a partial user update. Nil fields are
// left untouched on the stored record.
type UserUpdate struct {
	Username *string         `json:"username"`
	Fullname *string         `json:"fullname"`
	Email    *string         `json:"email"`
	Password *string         `json:"password"`
	Gender   *string         `json:"gender"`
	DOB      *string         `json:"dob"`
	Phone    *string         `json:"phone"`
	Address  *models.Address `json:"address"`
	Role     *string         `json:"role"`
}

// UserService handles business logic for user records.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser persists a new user, hashing the password when one is supplied.
// Used by the generic user-create route, which also accepts OAuth sign-ups.
func (s *UserService) CreateUser(user *models.User) error {
	if existing, _ := s.repo.GetByEmail(user.Email); existing != nil {
		return apperrors.Conflict("Email already registered")
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
		if err != nil {
			return apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
		}
		user.Password = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	return s.repo.Create(user)
}

// GetAllUsers retrieves every user.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// UpdateUser applies a partial merge of the supplied fields onto the stored
// record and returns the post-update record.
func (s *UserService) UpdateUser(id string, update *UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Fullname != nil {
		user.Fullname = *update.Fullname
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
		}
		user.Password = string(hashed)
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.DOB != nil {
		user.DOB = *update.DOB
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Role != nil {
		user.Role = *update.Role
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by ID.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}
