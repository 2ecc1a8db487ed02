package services_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/services"
	"mymirro/pkg/googleauth"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// fakeGoogleVerifier returns a canned identity, or an error.
type fakeGoogleVerifier struct {
	identity *googleauth.Identity
	err      error
}

func (f *fakeGoogleVerifier) Verify(_ context.Context, _ string) (*googleauth.Identity, error) {
	return f.identity, f.err
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(t *testing.T, repo *MockUserRepository, google googleauth.Verifier) *services.AuthService {
	t.Helper()
	svc, err := services.NewAuthService(repo, google, testJWTSecret)
	assert.NoError(t, err)
	return svc
}

func TestNewAuthService_EmptySecret(t *testing.T) {
	_, err := services.NewAuthService(new(MockUserRepository), nil, "")
	assert.Error(t, err)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(t, mockRepo, nil)

	user := &models.User{
		Email:    "test@example.com",
		Fullname: "Test User",
		Password: "password123",
	}

	var stored *models.User
	mockRepo.On("GetByEmail", user.Email).Return(nil, apperrors.NotFound("User not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.User)
	}).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// The stored password is a hash, never the plaintext, and verifying the
	// plaintext against it succeeds.
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	// Default role applied.
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestAuthService_RegisterUser_EmailInUse(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(t, mockRepo, nil)

	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "1"}, nil).Once()

	err := authService.RegisterUser(&models.User{Email: "taken@example.com", Password: "pw"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Equal(t, "Email already in use", apperrors.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(t, mockRepo, nil)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	// Successful login returns a token carrying exactly {id, role}.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.LoginUser("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["id"])
	assert.Equal(t, user.Role, claims["role"])
	mockRepo.AssertExpectations(t)

	// Wrong password fails with the generic message.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser("test@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperrors.MessageOf(err))
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))

	// Unknown email fails with the identical generic message.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperrors.NotFound("User not found")).Once()
	_, _, err = authService.LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperrors.MessageOf(err))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(t, mockRepo, nil)

	user := &models.User{ID: "user-123", Role: models.RoleAdmin}
	validToken, err := authService.GenerateToken(user)
	assert.NoError(t, err)

	// Valid token decodes to exactly {id, role}.
	identity, err := authService.ValidateToken(validToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", identity.ID)
	assert.Equal(t, models.RoleAdmin, identity.Role)

	// Malformed token fails.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// Any single-character mutation of the token fails verification.
	tampered := []byte(validToken)
	i := len(tampered) - 1
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}
	_, err = authService.ValidateToken(string(tampered))
	assert.Error(t, err)

	// Expired token fails.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "user-123",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredToken)
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	// Token signed with a different secret fails.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "user-123",
		"role": models.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	foreignToken, _ := foreign.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(foreignToken)
	assert.Error(t, err)
}

func TestAuthService_GoogleLogin_ExistingUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	verifier := &fakeGoogleVerifier{identity: &googleauth.Identity{
		Subject: "google-sub-1",
		Email:   "existing@example.com",
		Name:    "Existing User",
	}}
	authService := newAuthService(t, mockRepo, verifier)

	user := &models.User{ID: "user-9", Email: "existing@example.com", Role: models.RoleUser}
	mockRepo.On("GetByEmail", "existing@example.com").Return(user, nil).Once()

	token, loggedIn, err := authService.GoogleLogin(context.Background(), "provider-token")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-9", loggedIn.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_GoogleLogin_AutoProvision(t *testing.T) {
	mockRepo := new(MockUserRepository)
	verifier := &fakeGoogleVerifier{identity: &googleauth.Identity{
		Subject: "google-sub-2",
		Email:   "new@example.com",
		Name:    "New User",
	}}
	authService := newAuthService(t, mockRepo, verifier)

	var provisioned *models.User
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.NotFound("User not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		provisioned = args.Get(0).(*models.User)
		provisioned.ID = "user-10"
	}).Return(nil).Once()

	token, loggedIn, err := authService.GoogleLogin(context.Background(), "provider-token")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "new@example.com", loggedIn.Email)
	assert.Equal(t, models.RoleUser, provisioned.Role)
	assert.Equal(t, "google-sub-2", provisioned.GoogleID)
	assert.Empty(t, provisioned.Password)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_GoogleLogin_VerificationFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	verifier := &fakeGoogleVerifier{err: fmt.Errorf("audience mismatch")}
	authService := newAuthService(t, mockRepo, verifier)

	_, _, err := authService.GoogleLogin(context.Background(), "bad-token")
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
	assert.Equal(t, "Google authentication failed", apperrors.MessageOf(err))
}
