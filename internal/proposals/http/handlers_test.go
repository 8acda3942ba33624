package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ataa-grants/grants-backend/internal/notify"
	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
	"github.com/ataa-grants/grants-backend/internal/proposals/service"
)

// fakeStore is an in-memory service.Store for handler tests.
type fakeStore struct {
	items []domain.Proposal
}

func (m *fakeStore) Create(_ context.Context, f domain.NewProposalFields) (*domain.Proposal, error) {
	p := domain.Proposal{
		ID:               uuid.New().String(),
		SubmittedAt:      time.Now().UTC(),
		Status:           domain.StatusPending,
		EntityType:       f.EntityType,
		EntityName:       f.EntityName,
		LicenseNumber:    f.LicenseNumber,
		IssuingAuthority: f.IssuingAuthority,
		City:             f.City,
		Email:            f.Email,
		Mobile:           f.Mobile,
		ResponsibleName:  f.ResponsibleName,
		NationalID:       f.NationalID,
		ProjectTitle:     f.ProjectTitle,
		ProjectDesc:      f.ProjectDesc,
		Beneficiaries:    f.Beneficiaries,
		Location:         f.Location,
		Duration:         f.Duration,
		FundingAmount:    f.FundingAmount,
		BudgetBreakdown:  f.BudgetBreakdown,
		ExpectedOutcomes: f.ExpectedOutcomes,
	}
	m.items = append([]domain.Proposal{p}, m.items...)
	return &p, nil
}

func (m *fakeStore) List(context.Context) ([]domain.Proposal, error) {
	out := make([]domain.Proposal, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *fakeStore) GetByID(_ context.Context, id string) (*domain.Proposal, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProposalNotFound
}

func (m *fakeStore) SetStatus(_ context.Context, id string, status domain.Status) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			return nil
		}
	}
	return domain.ErrProposalNotFound
}

func (m *fakeStore) AttachAIReview(_ context.Context, id, review string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].AIReview = &review
			return nil
		}
	}
	return domain.ErrProposalNotFound
}

func (m *fakeStore) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrProposalNotFound
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	svc := service.NewProposalService(store, nil, zap.NewNop())
	h := NewHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterPublic(api.Group("/proposals"))
	// auth middleware is exercised in the auth package tests
	h.RegisterAdmin(api.Group("/admin/proposals"))

	return r, store
}

type proposalResp struct {
	OK       bool            `json:"ok"`
	Proposal domain.Proposal `json:"proposal"`
}

type listResp struct {
	OK        bool              `json:"ok"`
	Proposals []domain.Proposal `json:"proposals"`
}

func submit(t *testing.T, r *gin.Engine, body string) proposalResp {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/proposals", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp proposalResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func fetchList(t *testing.T, r *gin.Engine, query string) listResp {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/proposals"+query, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitCoercesFundingAmount(t *testing.T) {
	r, _ := setupRouter(t)

	resp := submit(t, r, `{"entityName":"جمعية البر","projectTitle":"سقيا الماء","fundingAmount":"1500"}`)

	assert.True(t, resp.OK)
	assert.Equal(t, domain.StatusPending, resp.Proposal.Status)
	assert.Equal(t, domain.Amount(1500), resp.Proposal.FundingAmount)
	assert.NotEmpty(t, resp.Proposal.ID)
	assert.False(t, resp.Proposal.SubmittedAt.IsZero())
}

func TestSubmitDefaultsEntityType(t *testing.T) {
	r, _ := setupRouter(t)

	resp := submit(t, r, `{"entityName":"x","projectTitle":"y"}`)
	assert.Equal(t, domain.EntityNonProfit, resp.Proposal.EntityType)
}

func TestSubmitWithPrecomputedReview(t *testing.T) {
	r, store := setupRouter(t)

	resp := submit(t, r, `{"projectTitle":"y","aiReview":"مقترح واعد"}`)

	require.NotNil(t, resp.Proposal.AIReview)
	assert.Equal(t, "مقترح واعد", *resp.Proposal.AIReview)

	// persisted too, not just echoed
	require.NotNil(t, store.items[0].AIReview)
	assert.Equal(t, "مقترح واعد", *store.items[0].AIReview)
}

func TestSubmitInvalidBody(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/proposals", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFiltersAndSearch(t *testing.T) {
	r, _ := setupRouter(t)

	a := submit(t, r, `{"entityName":"جمعية البر","projectTitle":"سقيا الماء"}`)
	submit(t, r, `{"entityName":"فريق عطاء","projectTitle":"كسوة الشتاء"}`)

	// approve the first
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/proposals/%s/status", a.Proposal.ID),
		bytes.NewReader([]byte(`{"status":"approved"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, fetchList(t, r, "").Proposals, 2)
	assert.Len(t, fetchList(t, r, "?status=all").Proposals, 2)

	approved := fetchList(t, r, "?status=approved")
	require.Len(t, approved.Proposals, 1)
	assert.Equal(t, a.Proposal.ID, approved.Proposals[0].ID)

	searched := fetchList(t, r, "?q="+"%D8%B9%D8%B7%D8%A7%D8%A1") // عطاء
	require.Len(t, searched.Proposals, 1)
	assert.Equal(t, "فريق عطاء", searched.Proposals[0].EntityName)

	assert.Empty(t, fetchList(t, r, "?status=rejected").Proposals)
}

func TestStatusLastWriteWinsOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)

	p := submit(t, r, `{"projectTitle":"t"}`)

	for _, status := range []string{"approved", "rejected"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch,
			fmt.Sprintf("/api/v1/admin/proposals/%s/status", p.Proposal.ID),
			bytes.NewReader([]byte(fmt.Sprintf(`{"status":%q}`, status))))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	list := fetchList(t, r, "")
	require.Len(t, list.Proposals, 1)
	assert.Equal(t, domain.StatusRejected, list.Proposals[0].Status)
}

func TestStatusValidation(t *testing.T) {
	r, _ := setupRouter(t)

	p := submit(t, r, `{"projectTitle":"t"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/proposals/%s/status", p.Proposal.ID),
		bytes.NewReader([]byte(`{"status":"archived"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPatch,
		"/api/v1/admin/proposals/no-such-id/status",
		bytes.NewReader([]byte(`{"status":"approved"}`)))
	req2.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestDeleteProposal(t *testing.T) {
	r, _ := setupRouter(t)

	p := submit(t, r, `{"projectTitle":"t"}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/proposals/"+p.Proposal.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, fetchList(t, r, "").Proposals)

	// deleting again fails without touching anything else
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/proposals/"+p.Proposal.ID, nil))
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

// closedFeed hands subscribers an already-drained event channel, so a
// stream serves its initial state and ends.
type closedFeed struct{}

func (closedFeed) Subscribe(context.Context) (<-chan notify.Event, error) {
	ch := make(chan notify.Event)
	close(ch)
	return ch, nil
}

// downStore fails every read, the way a lost database does.
type downStore struct {
	fakeStore
}

func (*downStore) List(context.Context) ([]domain.Proposal, error) {
	return nil, errors.New("connection refused")
}

func TestStreamSendsInitialSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	svc := service.NewProposalService(store, nil, zap.NewNop())
	h := NewHandler(svc, closedFeed{})

	r := gin.New()
	h.RegisterAdmin(r.Group("/api/v1/admin/proposals"))

	_, err := svc.Create(context.Background(), domain.NewProposalFields{ProjectTitle: "سقيا الماء"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/proposals/events", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event: initial")
	assert.Contains(t, w.Body.String(), "سقيا الماء")
}

func TestStreamEndsWhenInitialReadFails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := service.NewProposalService(&downStore{}, nil, zap.NewNop())
	h := NewHandler(svc, closedFeed{})

	r := gin.New()
	h.RegisterAdmin(r.Group("/api/v1/admin/proposals"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/proposals/events", nil))

	// the outage is signalled, not hidden behind an empty stream
	assert.Contains(t, w.Body.String(), "event: error")
	assert.NotContains(t, w.Body.String(), "event: initial")
}

func TestStreamUnavailableWithoutFeed(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/proposals/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	submit(t, r, `{"projectTitle":"a","fundingAmount":1000}`)
	// non-numeric amount coerces to zero on the way in
	submit(t, r, `{"projectTitle":"b","fundingAmount":"abc"}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/proposals/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK    bool          `json:"ok"`
		Stats service.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 2, resp.Stats.Pending)
	assert.Equal(t, 0, resp.Stats.Approved)
	assert.Equal(t, 1000.0, resp.Stats.TotalFunding)
}
