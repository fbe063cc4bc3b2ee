package faq

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines FAQ business logic.
type Service interface {
	CreateFAQ(ctx context.Context, req Request) (*FAQ, error)
	ListFAQs(ctx context.Context) ([]FAQ, error)
	UpdateFAQ(ctx context.Context, id string, req Request) (*FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error
}

// Request holds the data for creating or updating an FAQ.
type Request struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"order"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return fmt.Errorf("question and answer are required")
	}
	return nil
}

func (s *service) CreateFAQ(ctx context.Context, req Request) (*FAQ, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	f := &FAQ{
		ID:           uuid.New(),
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: normalizeOrder(req.DisplayOrder),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) ListFAQs(ctx context.Context) ([]FAQ, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateFAQ(ctx context.Context, id string, req Request) (*FAQ, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Question = req.Question
	f.Answer = req.Answer
	f.DisplayOrder = normalizeOrder(req.DisplayOrder)
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) DeleteFAQ(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// An unset or nonsense display order falls back to 1.
func normalizeOrder(order int) int {
	if order <= 0 {
		return 1
	}
	return order
}
