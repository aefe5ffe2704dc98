package printer

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/amishk599/vacancies/internal/model"
)

func TestLogPrinter_Print_zeroVacancies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	p := NewLogPrinter(logger)
	if err := p.Print(nil); err != nil {
		t.Errorf("Print(nil) = %v, want nil", err)
	}
	if err := p.Print([]model.Vacancy{}); err != nil {
		t.Errorf("Print([]) = %v, want nil", err)
	}
}

func TestLogPrinter_Print_logsEachVacancy(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPrinter(slog.New(slog.NewTextHandler(&buf, nil)))
	vacancies := []model.Vacancy{
		{Title: "Engineer", Link: "https://example.com/1", Source: "hh"},
		{Title: "Developer", Link: "https://example.com/2"},
	}
	if err := p.Print(vacancies); err != nil {
		t.Fatalf("Print(vacancies) = %v, want nil", err)
	}
	if got := strings.Count(buf.String(), "msg=vacancy"); got != 2 {
		t.Errorf("expected 2 log lines, got %d:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "source=hh") {
		t.Errorf("expected source attr in output:\n%s", buf.String())
	}
}
