package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"saasland/internal/model"
	"saasland/internal/store"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email that already
	// has a user document.
	ErrEmailTaken = errors.New("user already exists")
)

// AuthService handles the demo signup/login flow.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	store store.Store
}

// NewAuthService creates a new authentication service over the given store.
func NewAuthService(s store.Store) AuthService {
	return &authService{store: s}
}

// Signup creates a new user with a hashed password. The existence check and
// the insert are two separate store round trips; two concurrent signups with
// the same email can both pass the check.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	var existing []model.User
	if err := s.store.Find(ctx, model.CollectionUser, store.Filter{store.Eq("email", email)}, &existing); err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		AvatarURL:    nil,
		Role:         "user",
		IsActive:     true,
	}
	id, err := s.store.Create(ctx, model.CollectionUser, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse user id %q: %w", id, err)
	}
	user.ID = oid
	return user, nil
}

// Login authenticates by email and password and returns the first matching
// user.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	var users []model.User
	if err := s.store.Find(ctx, model.CollectionUser, store.Filter{store.Eq("email", email)}, &users); err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
