package services

import (
	"context"
	"fmt"
	"time"

	"mymirro/internal/apperrors"
	"mymirro/internal/models"
	"mymirro/internal/repositories"
	"mymirro/pkg/googleauth"
	"mymirro/pkg/logger"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost    = 10
	tokenValidity = time.Hour
)

// Identity is the decoded subject of a verified token.
type Identity struct {
	ID   string
	Role string
}

// AuthService handles registration, login and token issuance/verification.
type AuthService struct {
	userRepo  repositories.UserRepository
	google    googleauth.Verifier
	jwtSecret []byte
}

// NewAuthService creates a new AuthService. An empty signing secret is a
// configuration error; callers are expected to treat it as fatal.
func NewAuthService(userRepo repositories.UserRepository, google googleauth.Verifier, jwtSecret string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt signing secret is not configured")
	}
	return &AuthService{
		userRepo:  userRepo,
		google:    google,
		jwtSecret: []byte(jwtSecret),
	}, nil
}

// RegisterUser hashes the password and persists a new user. The email
// pre-check only exists for the friendlier message; the unique index is what
// actually guarantees uniqueness under concurrent registrations.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, _ := s.userRepo.GetByEmail(user.Email); existing != nil {
		return apperrors.Conflict("Email already in use")
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

	return s.userRepo.Create(user)
}

// LoginUser authenticates by email and password and returns a signed token
// together with the user record.
func (s *AuthService) LoginUser(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.InvalidCredentials()
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return token, user, nil
}

// GoogleLogin verifies an externally-issued Google ID token, provisioning a
// local account on first login, and returns a locally-signed token.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (string, *models.User, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		logger.Warn("google token verification failed", zap.Error(err))
		return "", nil, apperrors.OAuthFailed(err)
	}

	user, err := s.userRepo.GetByEmail(identity.Email)
	if err != nil {
		user = &models.User{
			Username: identity.Name,
			Fullname: identity.Name,
			Email:    identity.Email,
			GoogleID: identity.Subject,
			Role:     models.RoleUser,
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", nil, err
		}
		logger.Info("provisioned user from google login", zap.String("user_id", user.ID))
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return token, user, nil
}

// GenerateToken issues a signed token embedding the user's id and role,
// valid for one hour.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  now.Add(tokenValidity).Unix(),
		"iat":  now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token. A bad signature, malformed
// token and expired token all fail the same way.
func (s *AuthService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return &Identity{ID: id, Role: role}, nil
}
