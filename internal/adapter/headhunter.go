package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/amishk599/vacancies/internal/model"
)

// HeadHunterBaseURL is the public hh.ru API root.
const HeadHunterBaseURL = "https://api.hh.ru/"

// Ensure HeadHunterAdapter implements model.VacancySource.
var _ model.VacancySource = (*HeadHunterAdapter)(nil)

// headHunterResponse is the top-level hh.ru /vacancies response. Items are
// kept raw; normalization happens in model.NewVacancy.
type headHunterResponse struct {
	Items []model.Payload `json:"items"`
}

// HeadHunterAdapter searches vacancies on hh.ru. The API needs no auth.
type HeadHunterAdapter struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewHeadHunterAdapter creates an adapter for the hh.ru API. An empty baseURL
// selects HeadHunterBaseURL; an empty userAgent leaves the client default.
func NewHeadHunterAdapter(baseURL, userAgent string, client *http.Client, logger *slog.Logger) *HeadHunterAdapter {
	if baseURL == "" {
		baseURL = HeadHunterBaseURL
	}
	return &HeadHunterAdapter{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

// Name returns the provider name used in logs and stored records.
func (a *HeadHunterAdapter) Name() string { return "hh" }

// GetVacancies returns the raw postings matching query. Any failure is
// logged and yields an empty slice.
func (a *HeadHunterAdapter) GetVacancies(ctx context.Context, query string) []model.Payload {
	items, err := a.fetch(ctx, query)
	if err != nil {
		a.logger.Error("error accessing HeadHunter API", "query", query, "error", err)
		return []model.Payload{}
	}
	a.logger.Debug("fetched vacancies", "source", a.Name(), "query", query, "count", len(items))
	return items
}

func (a *HeadHunterAdapter) fetch(ctx context.Context, query string) ([]model.Payload, error) {
	params := url.Values{}
	params.Set("text", query)

	header := http.Header{}
	if a.userAgent != "" {
		header.Set("User-Agent", a.userAgent)
	}

	var resp headHunterResponse
	if err := getJSON(ctx, a.client, joinURL(a.baseURL, "vacancies"), params, header, &resp); err != nil {
		return nil, fmt.Errorf("hh fetch for %q: %w", query, err)
	}
	if resp.Items == nil {
		return []model.Payload{}, nil
	}
	return resp.Items, nil
}
