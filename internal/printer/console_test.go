package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amishk599/vacancies/internal/model"
)

func TestConsolePrinter_Print(t *testing.T) {
	from := 120000.0
	vacancies := []model.Vacancy{
		{
			Title:           "Go developer",
			Link:            "https://hh.ru/vacancy/1",
			SalaryFrom:      &from,
			RequirementsRaw: "<p>Знание Go</p>",
			Extra:           model.Payload{"area": map[string]any{"name": "Москва"}, "employer": map[string]any{"name": "Acme"}},
		},
		{Title: "Analyst", Link: "https://hh.ru/vacancy/2"},
	}

	var buf bytes.Buffer
	if err := NewConsolePrinter(&buf).Print(vacancies); err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Go developer",
		"https://hh.ru/vacancy/1",
		"от 120000",
		"Знание Go",
		"Москва",
		"Acme",
		"Analyst",
		model.NoSalary,
		model.NoRequirements,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, strings.Repeat("-", separatorWidth)); got != 2 {
		t.Errorf("expected 2 separator lines, got %d", got)
	}
}

func TestConsolePrinter_PrintNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsolePrinter(&buf).Print(nil); err != nil {
		t.Fatalf("Print(nil): %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestConsolePrinter_PrintStored(t *testing.T) {
	var buf bytes.Buffer
	err := NewConsolePrinter(&buf).PrintStored([]model.StoredVacancy{
		{Title: "Saved", Link: "https://x", Salary: "до 5000", City: "Омск", Currency: "rub", Employer: "Gamma", Requirements: "SQL"},
	})
	if err != nil {
		t.Fatalf("PrintStored: %v", err)
	}
	for _, want := range []string{"Saved", "до 5000", "Омск", "rub", "Gamma", "SQL"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}
