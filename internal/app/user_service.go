package app

import (
	"errors"
	"fmt"
	"strings"

	"pantry-on-command/internal/model"
	"pantry-on-command/internal/pkg/passhash"
)

type UserService struct {
	users  UserStore
	hasher *passhash.Hasher
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username string
	Email    string
}

func NewUserService(users UserStore, hasher *passhash.Hasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register creates a new account. Every registration gets the USER role;
// elevated roles are assigned out of band.
func (s *UserService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" || len(input.Password) < 8 {
		return nil, ErrInvalidInput
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:          username,
		Email:             email,
		EncryptedPassword: digest,
		Role:              model.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return user, nil
}

func (s *UserService) GetByID(userID uint) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns one page of users with the given role, sorted by username.
func (s *UserService) List(role string, page, size int) (Paginated[model.User], error) {
	page, size = NormalizePage(page, size)

	users, total, err := s.users.FindPageByRole(role, page, size)
	if err != nil {
		return Paginated[model.User]{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return NewPaginated(users, page, size, total), nil
}

// Update changes username and email only; passwords are immutable here.
func (s *UserService) Update(userID uint, input UpdateUserInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Username = username
	user.Email = email
	if err := s.users.Update(user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return user, nil
}

func (s *UserService) Delete(userID uint) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.Delete(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return nil
}
