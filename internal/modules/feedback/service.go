package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	SubmitFeedback(ctx context.Context, req SubmitRequest) (*Feedback, error)
	ListApproved(ctx context.Context) ([]Feedback, error)
	ListPending(ctx context.Context) ([]Feedback, error)
	ApproveFeedback(ctx context.Context, id string) error
	RejectFeedback(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SubmitFeedback(ctx context.Context, req SubmitRequest) (*Feedback, error) {
	name := strings.TrimSpace(req.CustomerName)
	msg := strings.TrimSpace(req.Message)
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	if msg == "" {
		return nil, errors.New("message is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	f := &Feedback{
		ID:           uuid.New(),
		CustomerName: name,
		Rating:       req.Rating,
		Message:      msg,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) ListApproved(ctx context.Context) ([]Feedback, error) {
	return s.repo.ListByStatus(ctx, StatusApproved)
}

func (s *service) ListPending(ctx context.Context) ([]Feedback, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *service) ApproveFeedback(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.Status == StatusApproved {
		return errors.New("feedback already approved")
	}
	return s.repo.UpdateStatus(ctx, id, StatusApproved)
}

// RejectFeedback removes the submission entirely, there is no rejected state.
func (s *service) RejectFeedback(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
