package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
)

// ProposalRepository provides persistence operations for proposals.
type ProposalRepository struct {
	db *pgxpool.Pool
}

// New creates a new proposal repository.
func New(db *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{db: db}
}

const proposalColumns = `
id, submitted_at, status, ai_review,
entity_type, entity_name, license_number, issuing_authority, city,
email, mobile, responsible_name, national_id,
project_title, project_desc, beneficiaries, location, duration,
funding_amount, budget_breakdown, expected_outcomes`

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var p domain.Proposal
	var amount float64
	err := row.Scan(
		&p.ID, &p.SubmittedAt, &p.Status, &p.AIReview,
		&p.EntityType, &p.EntityName, &p.LicenseNumber, &p.IssuingAuthority, &p.City,
		&p.Email, &p.Mobile, &p.ResponsibleName, &p.NationalID,
		&p.ProjectTitle, &p.ProjectDesc, &p.Beneficiaries, &p.Location, &p.Duration,
		&amount, &p.BudgetBreakdown, &p.ExpectedOutcomes,
	)
	if err != nil {
		return nil, err
	}
	p.FundingAmount = domain.Amount(amount)
	return &p, nil
}

// Create inserts a new proposal. The id is assigned here, the status is
// always pending and the submission timestamp is set by the database.
func (r *ProposalRepository) Create(ctx context.Context, f domain.NewProposalFields) (*domain.Proposal, error) {
	const q = `
INSERT INTO proposals (
	id, status,
	entity_type, entity_name, license_number, issuing_authority, city,
	email, mobile, responsible_name, national_id,
	project_title, project_desc, beneficiaries, location, duration,
	funding_amount, budget_breakdown, expected_outcomes
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
RETURNING ` + proposalColumns + `;`

	id := uuid.New().String()
	p, err := scanProposal(r.db.QueryRow(ctx, q,
		id, domain.StatusPending,
		f.EntityType, f.EntityName, f.LicenseNumber, f.IssuingAuthority, f.City,
		f.Email, f.Mobile, f.ResponsibleName, f.NationalID,
		f.ProjectTitle, f.ProjectDesc, f.Beneficiaries, f.Location, f.Duration,
		float64(f.FundingAmount), f.BudgetBreakdown, f.ExpectedOutcomes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}
	return p, nil
}

// List returns every proposal, most recently submitted first.
func (r *ProposalRepository) List(ctx context.Context) ([]domain.Proposal, error) {
	const q = `
SELECT ` + proposalColumns + `
FROM proposals
ORDER BY submitted_at DESC;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Proposal, 0, 16)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetByID returns a single proposal.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	const q = `
SELECT ` + proposalColumns + `
FROM proposals
WHERE id = $1;`

	p, err := scanProposal(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, err
	}
	return p, nil
}

// SetStatus updates only the status column. Re-setting the current
// status is allowed and is a no-op from the caller's point of view.
func (r *ProposalRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	const q = `UPDATE proposals SET status = $2 WHERE id = $1;`
	tag, err := r.db.Exec(ctx, q, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}

// AttachAIReview updates only the ai_review column.
func (r *ProposalRepository) AttachAIReview(ctx context.Context, id, review string) error {
	const q = `UPDATE proposals SET ai_review = $2 WHERE id = $1;`
	tag, err := r.db.Exec(ctx, q, id, review)
	if err != nil {
		return fmt.Errorf("update ai review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}

// Delete removes the record permanently. There is no soft delete and no
// recovery path.
func (r *ProposalRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM proposals WHERE id = $1;`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}
