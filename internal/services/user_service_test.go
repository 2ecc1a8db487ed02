package services_test

import (
	"net/http"
	"testing"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/repositories"
	"mymirro/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newUser(email, username string) *models.User {
	return &models.User{
		Username: username,
		Fullname: "Some Person",
		Email:    email,
		Password: "secret123",
		Gender:   "Female",
		DOB:      "1995-04-02",
		Phone:    "555-0101",
		Address: models.Address{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			Zip:     "62701",
			Country: "USA",
		},
	}
}

func TestUserService_CreateUser(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	svc := services.NewUserService(repo)

	user := newUser("a@example.com", "person_a")
	err := svc.CreateUser(user)
	assert.NoError(t, err)

	stored, err := repo.GetByEmail("a@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.Equal(t, models.RoleUser, stored.Role)

	// Same email again is a conflict regardless of other fields.
	dup := newUser("a@example.com", "person_b")
	err = svc.CreateUser(dup)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestUserService_UpdateUser_PartialMerge(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	svc := services.NewUserService(repo)

	user := newUser("b@example.com", "person_b")
	assert.NoError(t, svc.CreateUser(user))

	phone := "555-9999"
	city := user.Address
	city.City = "Shelbyville"
	updated, err := svc.UpdateUser(user.ID, &services.UserUpdate{
		Phone:   &phone,
		Address: &city,
	})
	assert.NoError(t, err)

	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "Shelbyville", updated.Address.City)
	// Untouched fields survive.
	assert.Equal(t, "person_b", updated.Username)
	assert.Equal(t, "b@example.com", updated.Email)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	svc := services.NewUserService(repo)

	user := newUser("c@example.com", "person_c")
	assert.NoError(t, svc.CreateUser(user))

	newPassword := "brandnew"
	updated, err := svc.UpdateUser(user.ID, &services.UserUpdate{Password: &newPassword})
	assert.NoError(t, err)
	assert.NotEqual(t, "brandnew", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("brandnew")))
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	svc := services.NewUserService(repo)

	user := newUser("d@example.com", "person_d")
	assert.NoError(t, svc.CreateUser(user))

	assert.NoError(t, svc.DeleteUser(user.ID))

	_, err := svc.GetUserByID(user.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))

	err = svc.DeleteUser(user.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}
