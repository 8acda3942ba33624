package http

import "github.com/ataa-grants/grants-backend/internal/proposals/domain"

// createReq is the submission payload. Field names match what the form
// sends; fundingAmount accepts a number or a numeric string and is
// coerced on the way in. aiReview carries a review already obtained
// during the editing session, if any.
type createReq struct {
	EntityType       domain.EntityType `json:"entityType"`
	EntityName       string            `json:"entityName"`
	LicenseNumber    string            `json:"licenseNumber"`
	IssuingAuthority string            `json:"issuingAuthority"`
	City             string            `json:"city"`
	Email            string            `json:"email"`
	Mobile           string            `json:"mobile"`
	ResponsibleName  string            `json:"responsibleName"`
	NationalID       string            `json:"nationalId"`
	ProjectTitle     string            `json:"projectTitle"`
	ProjectDesc      string            `json:"projectDesc"`
	Beneficiaries    string            `json:"beneficiaries"`
	Location         string            `json:"location"`
	Duration         string            `json:"duration"`
	FundingAmount    domain.Amount     `json:"fundingAmount"`
	BudgetBreakdown  string            `json:"budgetBreakdown"`
	ExpectedOutcomes string            `json:"expectedOutcomes"`

	AIReview string `json:"aiReview,omitempty"`
}

func (r createReq) fields() domain.NewProposalFields {
	entityType := r.EntityType
	if entityType == "" {
		entityType = domain.EntityNonProfit
	}
	return domain.NewProposalFields{
		EntityType:       entityType,
		EntityName:       r.EntityName,
		LicenseNumber:    r.LicenseNumber,
		IssuingAuthority: r.IssuingAuthority,
		City:             r.City,
		Email:            r.Email,
		Mobile:           r.Mobile,
		ResponsibleName:  r.ResponsibleName,
		NationalID:       r.NationalID,
		ProjectTitle:     r.ProjectTitle,
		ProjectDesc:      r.ProjectDesc,
		Beneficiaries:    r.Beneficiaries,
		Location:         r.Location,
		Duration:         r.Duration,
		FundingAmount:    r.FundingAmount,
		BudgetBreakdown:  r.BudgetBreakdown,
		ExpectedOutcomes: r.ExpectedOutcomes,
	}
}

type statusReq struct {
	Status domain.Status `json:"status"`
}
