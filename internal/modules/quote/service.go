package quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines quote business logic.
type Service interface {
	AddQuote(ctx context.Context, text string) (*Quote, error)
	ListQuotes(ctx context.Context) ([]Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddQuote(ctx context.Context, text string) (*Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	q := &Quote{ID: uuid.New(), Text: text}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *service) ListQuotes(ctx context.Context) ([]Quote, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteQuote(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
