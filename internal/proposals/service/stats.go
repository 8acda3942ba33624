package service

import (
	"strings"

	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
)

// Stats are the dashboard aggregates, recomputed from the full
// collection on every request.
type Stats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Approved     int     `json:"approved"`
	TotalFunding float64 `json:"totalFunding"`
}

// ComputeStats derives the dashboard counters from a proposal
// collection. Funding amounts were coerced to numeric on write, so the
// sum is a plain accumulation.
func ComputeStats(proposals []domain.Proposal) Stats {
	st := Stats{Total: len(proposals)}
	for _, p := range proposals {
		switch p.Status {
		case domain.StatusPending:
			st.Pending++
		case domain.StatusApproved:
			st.Approved++
		}
		st.TotalFunding += float64(p.FundingAmount)
	}
	return st
}

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// Filter returns the proposals passing the combined dashboard filter: a
// proposal is visible iff the status filter is "all" (or empty) or
// matches its status, and the search term is empty or is a
// case-insensitive substring of the entity name or the project title.
func Filter(proposals []domain.Proposal, status, term string) []domain.Proposal {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if status != "" && status != StatusFilterAll && string(p.Status) != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.EntityName), term) &&
			!strings.Contains(strings.ToLower(p.ProjectTitle), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
