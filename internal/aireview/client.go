package aireview

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ataa-grants/grants-backend/internal/proposals/domain"
)

// Request carries the proposal excerpts the reviewer looks at. Title
// and description are mandatory; the rest only enriches the prompt.
// The funding amount takes the same lenient form as a submission, so
// the form state that submits cleanly can also request a review.
type Request struct {
	ProjectTitle  string        `json:"projectTitle"`
	ProjectDesc   string        `json:"projectDesc"`
	FundingAmount domain.Amount `json:"fundingAmount"`
	Beneficiaries string        `json:"beneficiaries"`
}

// Client produces short review commentary for a proposal using the
// Gemini API. It is independent of persistence: callers that cannot get
// a review proceed without one.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed review client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Review asks the model for a brief technical assessment. The response
// is a single text block; an empty answer is treated as an error so the
// caller never attaches a blank review.
func (c *Client) Review(ctx context.Context, req Request) (string, error) {
	prompt := buildPrompt(req)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate review: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty review from model")
	}
	return text, nil
}

// buildPrompt mirrors the platform's reviewer persona: an expert in
// charitable project evaluation, answering in at most three lines with
// strengths and improvement opportunities.
func buildPrompt(req Request) string {
	return fmt.Sprintf(
		`أنت خبير في تقييم المشاريع الخيرية. قم بمراجعة هذا المقترح وتقديم تقييم فني موجز (3 أسطر كحد أقصى) يوضح نقاط القوة وفرص التحسين لزيادة فرص القبول.
العنوان: %s
الوصف: %s
الميزانية: %.0f ريال
الفئة: %s`,
		req.ProjectTitle, req.ProjectDesc, float64(req.FundingAmount), req.Beneficiaries,
	)
}
