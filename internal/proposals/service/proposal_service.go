package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ataa-grants/grants-backend/internal/notify"
	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
)

// Store is the persistence surface the service needs. Satisfied by
// repository.ProposalRepository.
type Store interface {
	Create(ctx context.Context, f domain.NewProposalFields) (*domain.Proposal, error)
	List(ctx context.Context) ([]domain.Proposal, error)
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	SetStatus(ctx context.Context, id string, status domain.Status) error
	AttachAIReview(ctx context.Context, id, review string) error
	Delete(ctx context.Context, id string) error
}

// ChangeFeed publishes table-change notifications to dashboard
// subscribers.
type ChangeFeed interface {
	Publish(ctx context.Context, ev notify.Event) error
}

// ProposalService wraps the store with change notifications. Write
// errors propagate to the caller; a failed notification is only logged,
// since the write itself already committed.
type ProposalService struct {
	store Store
	feed  ChangeFeed
	log   *zap.Logger
}

// NewProposalService creates a new proposal service.
func NewProposalService(store Store, feed ChangeFeed, log *zap.Logger) *ProposalService {
	return &ProposalService{store: store, feed: feed, log: log}
}

// Create persists a new proposal with status pending and notifies
// subscribers. The caller must not assume the record was saved on error.
func (s *ProposalService) Create(ctx context.Context, f domain.NewProposalFields) (*domain.Proposal, error) {
	p, err := s.store.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, notify.OpCreated, p.ID)
	return p, nil
}

// List returns all proposals, most recent first.
func (s *ProposalService) List(ctx context.Context) ([]domain.Proposal, error) {
	return s.store.List(ctx)
}

// GetByID returns a single proposal.
func (s *ProposalService) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	return s.store.GetByID(ctx, id)
}

// SetStatus updates a proposal's status. Any status is reachable from
// any other, including re-setting the current one.
func (s *ProposalService) SetStatus(ctx context.Context, id string, status domain.Status) error {
	if err := s.store.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.notify(ctx, notify.OpStatusUpdated, id)
	return nil
}

// AttachAIReview stores review commentary on a proposal.
func (s *ProposalService) AttachAIReview(ctx context.Context, id, review string) error {
	if err := s.store.AttachAIReview(ctx, id, review); err != nil {
		return err
	}
	s.notify(ctx, notify.OpReviewAttached, id)
	return nil
}

// Delete removes a proposal permanently.
func (s *ProposalService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, notify.OpDeleted, id)
	return nil
}

func (s *ProposalService) notify(ctx context.Context, op notify.Op, id string) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, notify.Event{Op: op, ProposalID: id}); err != nil {
		s.log.Warn("change notification dropped",
			zap.String("op", string(op)),
			zap.String("proposal_id", id),
			zap.Error(err))
	}
}
