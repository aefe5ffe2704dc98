package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amishk599/vacancies/internal/filter"
	"github.com/amishk599/vacancies/internal/model"
	"github.com/amishk599/vacancies/internal/rank"
)

// Request describes one search run.
type Request struct {
	Query    string
	Keywords []string
	TopN     int
}

// Result summarizes a completed run.
type Result struct {
	RunID      string
	Fetched    int
	Matched    int
	Shown      []model.Vacancy
	Added      int
	Duplicates int
}

// Pipeline owns the full search flow for a single provider:
// fetch → normalize → filter → sort → top-N → print → save.
type Pipeline struct {
	source  model.VacancySource
	filter  model.VacancyFilter
	store   model.VacancyStore
	printer model.Printer
	logger  *slog.Logger
}

// New creates a pipeline wired with all its dependencies. A nil filter
// selects keyword filtering from each Request.
func New(
	source model.VacancySource,
	f model.VacancyFilter,
	store model.VacancyStore,
	printer model.Printer,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		source:  source,
		filter:  f,
		store:   store,
		printer: printer,
		logger:  logger,
	}
}

// Run executes one search. It returns model.ErrNoVacancies, without touching
// the store, when the provider returns nothing or no posting matches.
// Cancelling ctx stops the run before the next print or save.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", res.RunID, "source", p.source.Name())

	payloads := p.source.GetVacancies(ctx, req.Query)
	res.Fetched = len(payloads)
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("run %s: %w", res.RunID, err)
	}
	if len(payloads) == 0 {
		logger.Info("no vacancies fetched", "query", req.Query)
		return res, model.ErrNoVacancies
	}

	all := make([]model.Vacancy, 0, len(payloads))
	for _, payload := range payloads {
		v := model.NewVacancy(payload)
		v.Source = p.source.Name()
		all = append(all, v)
	}

	f := p.filter
	if f == nil {
		f = filter.NewKeywordFilter(req.Keywords)
	}
	matched := filter.Apply(f, all)
	res.Matched = len(matched)
	if len(matched) == 0 {
		logger.Info("no vacancies matched", "query", req.Query, "keywords", req.Keywords)
		return res, model.ErrNoVacancies
	}

	res.Shown = rank.TopN(rank.SortBySalaryDescending(matched), req.TopN)

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("run %s: %w", res.RunID, err)
	}
	if err := p.printer.Print(res.Shown); err != nil {
		return res, fmt.Errorf("run %s: printing: %w", res.RunID, err)
	}

	for _, v := range res.Shown {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("run %s: saving: %w", res.RunID, err)
		}
		added, err := p.store.Add(v)
		if err != nil {
			return res, fmt.Errorf("run %s: saving %q: %w", res.RunID, v.Title, err)
		}
		if added {
			res.Added++
		} else {
			res.Duplicates++
		}
	}

	logger.Info("search complete",
		"query", req.Query,
		"fetched", res.Fetched,
		"matched", res.Matched,
		"shown", len(res.Shown),
		"added", res.Added,
		"duplicates", res.Duplicates,
	)

	return res, nil
}
