package prompt

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type doneMsg[T any] struct {
	value T
	err   error
}

type spinnerTickMsg struct{}

// worker tracks the single background call of a loader so RunLoader can
// wait for it. A call that has not started by the time the program exits
// never starts.
type worker struct {
	mu      sync.Mutex
	closed  bool
	running bool
	done    chan struct{}
}

func newWorker() *worker {
	return &worker{done: make(chan struct{})}
}

// start reports whether the call may run; finish must follow a true result.
func (w *worker) start() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.running = true
	return true
}

func (w *worker) finish() { close(w.done) }

// wait blocks until a started call has returned, then refuses new calls.
func (w *worker) wait() {
	w.mu.Lock()
	w.closed = true
	running := w.running
	w.mu.Unlock()
	if running {
		<-w.done
	}
}

type loaderModel[T any] struct {
	label  string
	fn     func(ctx context.Context) (T, error)
	ctx    context.Context
	cancel context.CancelFunc
	worker *worker
	frame  int
	result T
	err    error
	done   bool
}

func (m loaderModel[T]) Init() tea.Cmd {
	return tea.Batch(m.do(), m.tick())
}

func (m loaderModel[T]) do() tea.Cmd {
	fn, ctx, w := m.fn, m.ctx, m.worker
	return func() tea.Msg {
		if !w.start() {
			return nil
		}
		defer w.finish()
		v, err := fn(ctx)
		return doneMsg[T]{value: v, err: err}
	}
}

func (m loaderModel[T]) tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m loaderModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg[T]:
		m.result = msg.value
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinnerTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, m.tick()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loaderModel[T]) View() string {
	if m.done {
		return ""
	}
	spinner := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(spinnerFrames[m.frame])
	return fmt.Sprintf("%s %s...\n", spinner, m.label)
}

// RunLoader shows a spinner labelled label while fn runs. It renders inline
// (no alt screen). ctrl+c cancels the context passed to fn; RunLoader still
// returns only after fn has, so fn's side effects are complete.
func RunLoader[T any](ctx context.Context, label string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := loaderModel[T]{
		label:  label,
		fn:     fn,
		ctx:    ctx,
		cancel: cancel,
		worker: newWorker(),
	}
	p := tea.NewProgram(m)
	result, err := p.Run()
	cancel()
	m.worker.wait()
	if err != nil {
		var zero T
		return zero, err
	}
	final := result.(loaderModel[T])
	return final.result, final.err
}
