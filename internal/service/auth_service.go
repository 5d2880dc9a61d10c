package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"court/internal/auth"
	apperrors "court/internal/errors"
	"court/internal/model"
	"court/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup creates a new user with a hashed password. Emails are stored
// lowercase so uniqueness is case-insensitive. The friendly existence check
// runs first; the unique index remains the backstop for races.
func (s *authService) Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	email = strings.ToLower(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
