package domain

import (
	"bytes"
	"strconv"
	"time"
)

// Status is the review lifecycle tag of a proposal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// EntityType distinguishes licensed non-profits from volunteer teams.
type EntityType string

const (
	EntityNonProfit EntityType = "non-profit"
	EntityVolunteer EntityType = "volunteer"
)

// Amount is a funding amount in SAR. Submissions arrive from a form, so
// the JSON value may be a number or a numeric string; anything that does
// not parse coerces to 0 so aggregate sums stay well-defined.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// Proposal is a single grant application record. Everything except the
// status and the AI review is fixed at creation.
type Proposal struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      Status    `json:"status"`
	AIReview    *string   `json:"aiReview,omitempty"`

	// Applicant entity
	EntityType       EntityType `json:"entityType"`
	EntityName       string     `json:"entityName"`
	LicenseNumber    string     `json:"licenseNumber"`
	IssuingAuthority string     `json:"issuingAuthority"`
	City             string     `json:"city"`
	Email            string     `json:"email"`
	Mobile           string     `json:"mobile"`
	ResponsibleName  string     `json:"responsibleName"`
	NationalID       string     `json:"nationalId"`

	// Project
	ProjectTitle     string `json:"projectTitle"`
	ProjectDesc      string `json:"projectDesc"`
	Beneficiaries    string `json:"beneficiaries"`
	Location         string `json:"location"`
	Duration         string `json:"duration"`
	FundingAmount    Amount `json:"fundingAmount"`
	BudgetBreakdown  string `json:"budgetBreakdown"`
	ExpectedOutcomes string `json:"expectedOutcomes"`
}

// NewProposalFields carries the immutable fields of a proposal at
// creation time. ID, status and submission timestamp are assigned by the
// store.
type NewProposalFields struct {
	EntityType       EntityType
	EntityName       string
	LicenseNumber    string
	IssuingAuthority string
	City             string
	Email            string
	Mobile           string
	ResponsibleName  string
	NationalID       string
	ProjectTitle     string
	ProjectDesc      string
	Beneficiaries    string
	Location         string
	Duration         string
	FundingAmount    Amount
	BudgetBreakdown  string
	ExpectedOutcomes string
}
