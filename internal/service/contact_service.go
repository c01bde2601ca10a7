package service

import (
	"context"
	"fmt"
	"time"

	"saasland/internal/model"
	"saasland/internal/store"
)

// ContactService stores contact form submissions. Messages are never read
// back through the API.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string, subject *string) error
}

type contactService struct {
	store store.Store
}

// NewContactService creates a new contact intake service.
func NewContactService(s store.Store) ContactService {
	return &contactService{store: s}
}

func (s *contactService) Submit(ctx context.Context, name, email, message string, subject *string) error {
	msg := &model.ContactMessage{
		Name:       name,
		Email:      email,
		Message:    message,
		Subject:    subject,
		Status:     "new",
		ReceivedAt: time.Now().UTC(),
	}
	if _, err := s.store.Create(ctx, model.CollectionContactMessage, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}
