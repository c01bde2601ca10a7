package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"saasland/internal/model"
	"saasland/internal/store"
)

func TestAuthService_SignupThenLogin(t *testing.T) {
	svc := NewAuthService(store.NewMemory())
	ctx := context.Background()

	created, err := svc.Signup(ctx, "Jane", "jane@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Jane", created.Name)
	assert.Equal(t, "jane@x.com", created.Email)
	assert.Equal(t, "user", created.Role)
	assert.True(t, created.IsActive)
	assert.False(t, created.ID.IsZero())
	// stored hash must verify but never equal the submitted password
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	logged, err := svc.Login(ctx, "jane@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc := NewAuthService(store.NewMemory())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Jane", "jane@x.com", "secret123")
	require.NoError(t, err)

	// Conflict regardless of the password value.
	_, err = svc.Signup(ctx, "Other Jane", "jane@x.com", "differentpass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	memStore := store.NewMemory()
	svc := NewAuthService(memStore)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Jane", "jane@x.com", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "wrong password",
			email:    "jane@x.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "valid credentials",
			email:    "jane@x.com",
			password: "secret123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}

func TestAuthService_LoginUsesFirstMatch(t *testing.T) {
	memStore := store.NewMemory()
	svc := NewAuthService(memStore)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcryptCost)
	require.NoError(t, err)

	// Two documents with the same email can exist because the existence
	// check and insert are separate round trips; login picks the first.
	firstID, err := memStore.Create(ctx, model.CollectionUser, &model.User{
		Name: "First", Email: "dup@x.com", PasswordHash: string(hashed), Role: "user", IsActive: true,
	})
	require.NoError(t, err)
	_, err = memStore.Create(ctx, model.CollectionUser, &model.User{
		Name: "Second", Email: "dup@x.com", PasswordHash: string(hashed), Role: "user", IsActive: true,
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "dup@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, firstID, user.ID.Hex())
}
