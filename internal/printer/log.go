package printer

import (
	"log/slog"

	"github.com/amishk599/vacancies/internal/model"
)

// Ensure LogPrinter implements model.Printer.
var _ model.Printer = (*LogPrinter)(nil)

// LogPrinter writes vacancies to the given logger as structured messages.
type LogPrinter struct {
	logger *slog.Logger
}

// NewLogPrinter returns a printer that logs each vacancy via slog.
func NewLogPrinter(logger *slog.Logger) *LogPrinter {
	return &LogPrinter{logger: logger}
}

// Print logs each vacancy with title, link, salary, city and employer.
// Returns nil (logging does not fail).
func (p *LogPrinter) Print(vacancies []model.Vacancy) error {
	for _, v := range vacancies {
		args := []any{"title", v.Title, "link", v.Link, "salary", v.SalaryText(), "city", v.City(), "employer", v.Employer()}
		if v.Source != "" {
			args = append(args, "source", v.Source)
		}
		p.logger.Info("vacancy", args...)
	}
	return nil
}
