package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amishk599/vacancies/internal/model"
)

// SuperJobBaseURL is the SuperJob API v2 root.
const SuperJobBaseURL = "https://api.superjob.ru/2.0/"

// ErrMissingToken is returned when the SuperJob API token is not configured.
var ErrMissingToken = errors.New("API_SUPERJOB token is missing in environment variables")

// Ensure SuperJobAdapter implements model.VacancySource.
var _ model.VacancySource = (*SuperJobAdapter)(nil)

// SuperJobOptions tune the SuperJob search. Zero values select defaults:
// order by payment ascending, no payment bounds.
type SuperJobOptions struct {
	BaseURL        string
	OrderField     string
	OrderDirection string
	PaymentFrom    int
	PaymentTo      int
}

type superJobResponse struct {
	Objects []model.Payload `json:"objects"`
}

// SuperJobAdapter searches vacancies on superjob.ru using a static app key.
type SuperJobAdapter struct {
	token  string
	opts   SuperJobOptions
	client *http.Client
	logger *slog.Logger
}

// NewSuperJobAdapter creates an adapter for the SuperJob API. It fails with
// ErrMissingToken when token is empty.
func NewSuperJobAdapter(token string, opts SuperJobOptions, client *http.Client, logger *slog.Logger) (*SuperJobAdapter, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if opts.BaseURL == "" {
		opts.BaseURL = SuperJobBaseURL
	}
	if opts.OrderField == "" {
		opts.OrderField = "payment"
	}
	if opts.OrderDirection == "" {
		opts.OrderDirection = "asc"
	}
	return &SuperJobAdapter{
		token:  token,
		opts:   opts,
		client: client,
		logger: logger,
	}, nil
}

// Name returns the provider name used in logs and stored records.
func (a *SuperJobAdapter) Name() string { return "sj" }

// GetVacancies returns the raw postings matching query. Any failure is
// logged and yields an empty slice.
func (a *SuperJobAdapter) GetVacancies(ctx context.Context, query string) []model.Payload {
	objects, err := a.fetch(ctx, query)
	if err != nil {
		a.logger.Error("error accessing SuperJob API", "query", query, "error", err)
		return []model.Payload{}
	}
	a.logger.Debug("fetched vacancies", "source", a.Name(), "query", query, "count", len(objects))
	return objects
}

func (a *SuperJobAdapter) fetch(ctx context.Context, query string) ([]model.Payload, error) {
	var resp superJobResponse
	if err := getJSON(ctx, a.client, joinURL(a.opts.BaseURL, "vacancies/"), a.params(query), a.header(), &resp); err != nil {
		return nil, fmt.Errorf("superjob fetch for %q: %w", query, err)
	}
	if resp.Objects == nil {
		return []model.Payload{}, nil
	}
	return resp.Objects, nil
}

func (a *SuperJobAdapter) params(query string) url.Values {
	params := url.Values{}
	params.Set("keyword", query)
	params.Set("order_field", a.opts.OrderField)
	params.Set("order_direction", a.opts.OrderDirection)
	if a.opts.PaymentFrom > 0 {
		params.Set("payment_from", strconv.Itoa(a.opts.PaymentFrom))
	}
	if a.opts.PaymentTo > 0 {
		params.Set("payment_to", strconv.Itoa(a.opts.PaymentTo))
	}
	return params
}

func (a *SuperJobAdapter) header() http.Header {
	header := http.Header{}
	header.Set("X-Api-App-Id", a.token)
	return header
}
