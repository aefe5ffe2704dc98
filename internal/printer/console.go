package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/vacancies/internal/model"
)

// Ensure ConsolePrinter implements model.Printer.
var _ model.Printer = (*ConsolePrinter)(nil)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// separatorWidth is the width of the line printed after each vacancy.
const separatorWidth = 40

// ConsolePrinter writes a human-readable dump of each vacancy.
type ConsolePrinter struct {
	w io.Writer
}

// NewConsolePrinter returns a printer writing to w.
func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

// Print writes title, link, salary, requirements, city, currency and
// employer of each vacancy, each record followed by a separator line.
func (p *ConsolePrinter) Print(vacancies []model.Vacancy) error {
	stored := make([]model.StoredVacancy, len(vacancies))
	for i, v := range vacancies {
		stored[i] = v.Project()
	}
	return p.PrintStored(stored)
}

// PrintStored writes already projected vacancies in the same layout as Print.
func (p *ConsolePrinter) PrintStored(vacancies []model.StoredVacancy) error {
	var b strings.Builder
	for _, v := range vacancies {
		b.WriteString(titleStyle.Render(v.Title))
		b.WriteByte('\n')
		field(&b, "Ссылка", v.Link)
		field(&b, "Зарплата", v.Salary)
		field(&b, "Требования", v.Requirements)
		field(&b, "Город", v.City)
		field(&b, "Валюта", v.Currency)
		field(&b, "Работодатель", v.Employer)
		b.WriteString(separatorStyle.Render(strings.Repeat("-", separatorWidth)))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("printing vacancies: %w", err)
	}
	return nil
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteByte('\n')
}
