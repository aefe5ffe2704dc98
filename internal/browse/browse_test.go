package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/vacancies/internal/model"
)

func sample() []model.StoredVacancy {
	return []model.StoredVacancy{
		{Title: "Go developer", Link: "https://hh.ru/vacancy/1", Salary: "от 200000", City: "Москва", Currency: "RUR", Employer: "Acme", Requirements: "Опыт Go от 3 лет"},
		{Title: "Python developer", Link: "https://hh.ru/vacancy/2", Salary: model.NoSalary, City: "Казань", Employer: "Beta"},
	}
}

func sized(m browseModel) tea.Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next
}

func TestBrowse_NavigateAndOpenDetail(t *testing.T) {
	var opened []string
	m := sized(browseModel{vacancies: sample(), open: func(url string) { opened = append(opened, url) }})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(browseModel).cursor; got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(browseModel).cursor; got != 1 {
		t.Errorf("cursor should clamp at 1, got %d", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	bm := m.(browseModel)
	if bm.view != viewDetail {
		t.Fatal("expected detail view after enter")
	}
	detail := bm.renderDetail()
	for _, want := range []string{"Go developer", "от 200000", "Москва", "RUR", "Acme", "Опыт Go от 3 лет", "https://hh.ru/vacancy/1"} {
		if !strings.Contains(detail, want) {
			t.Errorf("detail missing %q:\n%s", want, detail)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if len(opened) != 1 || opened[0] != "https://hh.ru/vacancy/1" {
		t.Errorf("opened = %v", opened)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(browseModel).view != viewList {
		t.Error("expected esc to return to the list")
	}
}

func TestBrowse_EmptyList(t *testing.T) {
	m := sized(browseModel{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(browseModel).view != viewList {
		t.Error("enter on an empty list must not open a detail view")
	}
	if !strings.Contains(m.View(), "нет сохранённых вакансий") {
		t.Errorf("expected empty placeholder, got:\n%s", m.View())
	}
}

func TestRenderVacancies_MarksCursor(t *testing.T) {
	out := renderVacancies(sample(), 1)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "  ") || !strings.HasPrefix(lines[3], "> ") {
		t.Errorf("unexpected cursor marks:\n%s", out)
	}
	if !strings.Contains(out, "Казань · "+model.NoSalary+" · Beta") {
		t.Errorf("missing subtitle:\n%s", out)
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("один два три четыре", 9)
	want := "один два\nтри\nчетыре"
	if got != want {
		t.Errorf("wordWrap = %q, want %q", got, want)
	}
}
