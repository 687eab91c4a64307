package app

import (
	"fmt"
	"strings"
	"time"

	"pantry-on-command/internal/model"
	"pantry-on-command/internal/pkg/jwtutil"
	"pantry-on-command/internal/pkg/passhash"
)

// UserStore is the credential/user persistence surface the services need.
// Lookups return (nil, nil) when no row matches.
type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	FindPageByRole(role string, page, size int) ([]model.User, int64, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type AuthService struct {
	users         UserStore
	hasher        *passhash.Hasher
	jwtSecret     string
	jwtExpiration time.Duration
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Principal Principal `json:"principal"`
	Token     string    `json:"token"`
}

func NewAuthService(users UserStore, hasher *passhash.Hasher, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		hasher:        hasher,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login checks the credentials and issues a signed token. Unknown email and
// wrong password fail with the same ErrWrongCredentials so the response
// never reveals which part was wrong.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, ErrWrongCredentials
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrWrongCredentials
	}
	if !s.hasher.Verify(input.Password, user.EncryptedPassword) {
		return nil, ErrWrongCredentials
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token failed: %w", err)
	}

	return &LoginResult{
		Principal: Principal{UserID: user.ID, Username: user.Username, Role: user.Role},
		Token:     token,
	}, nil
}

// Authenticate validates a token and re-resolves the embedded user id
// against the store, so a deleted user is rejected even while the token is
// still within its lifetime. Token errors pass through from jwtutil and
// stay distinguishable from ErrUserNotFound.
func (s *AuthService) Authenticate(token string) (*Principal, error) {
	claims, err := jwtutil.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}
