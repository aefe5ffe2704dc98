package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/vacancies/internal/config"
	"github.com/amishk599/vacancies/internal/filter"
	"github.com/amishk599/vacancies/internal/model"
	"github.com/amishk599/vacancies/internal/pipeline"
	"github.com/amishk599/vacancies/internal/printer"
	"github.com/amishk599/vacancies/internal/prompt"
)

const (
	msgNoVacancies     = "Нет вакансий, соответствующих заданным критериям."
	msgSaved           = "Вакансии успешно сохранены в JSON-файл."
	msgInvalidProvider = "Неверный выбор API."
)

var (
	searchProvider string
	searchQuery    string
	searchKeywords string
	searchTop      int
	searchDryRun   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a job board and save the top postings",
	Long: "Fetches postings from hh.ru or superjob.ru, filters them by keywords, sorts by salary and saves the top N.\n" +
		"Values not given as flags are asked for interactively.",
	RunE: runSearch,
}

func init() {
	addSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&searchProvider, "provider", "p", "", "job board: hh or sj")
	cmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query")
	cmd.Flags().StringVarP(&searchKeywords, "keywords", "k", "", "comma-separated filter keywords")
	cmd.Flags().IntVarP(&searchTop, "top", "n", 0, "number of vacancies to show and save")
	cmd.Flags().BoolVar(&searchDryRun, "dry-run", false, "print results without saving them")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()

	flags := cmd.Flags()
	interactive := false

	provider := strings.ToLower(strings.TrimSpace(searchProvider))
	if !flags.Changed("provider") {
		interactive = true
		options := make([]prompt.Option, len(providers))
		for i, p := range providers {
			options[i] = prompt.Option{Key: p.key, Label: p.label}
		}
		choice, err := prompt.RunProviderPicker(options)
		if err != nil {
			return err
		}
		if choice < 0 {
			return nil
		}
		provider = providers[choice].key
	}

	httpClient := newHTTPClient(cfg)
	source, err := createSource(provider, cfg, httpClient, logger)
	if errors.Is(err, errUnknownProvider) {
		fmt.Fprintln(cmd.OutOrStdout(), msgInvalidProvider)
		return nil
	}
	if err != nil {
		logger.Error("failed to create source", "provider", provider, "error", err)
		os.Exit(1)
	}

	query := searchQuery
	if !flags.Changed("query") {
		interactive = true
		if query, err = prompt.Ask("Введите поисковый запрос:", "python"); err != nil {
			return cancelled(err)
		}
	}

	keywords := filter.ParseKeywords(searchKeywords)
	if !flags.Changed("keywords") {
		interactive = true
		input, err := prompt.Ask("Введите ключевые слова для фильтрации вакансий (через запятую):", "")
		if err != nil {
			return cancelled(err)
		}
		keywords = filter.ParseKeywords(input)
	}

	top := searchTop
	if flags.Changed("top") {
		if err := validateTop(top); err != nil {
			return err
		}
	} else {
		interactive = true
		if top, err = prompt.AskInt("Введите количество вакансий для вывода:", strconv.Itoa(cfg.Search.TopN)); err != nil {
			return cancelled(err)
		}
	}

	vacancyStore, closeStore, err := openStore(cfg, searchDryRun, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// While the spinner owns the terminal, printed vacancies are buffered.
	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if interactive {
		out = &buf
	}

	p := pipeline.New(source, nil, vacancyStore, newPrinter(cfg, out, logger), logger)
	req := pipeline.Request{Query: query, Keywords: keywords, TopN: top}

	var res pipeline.Result
	if interactive {
		res, err = prompt.RunLoader(ctx, "Поиск вакансий", func(ctx context.Context) (pipeline.Result, error) {
			return p.Run(ctx, req)
		})
		// RunLoader returns only after Run has, so buf is no longer written to.
		cmd.OutOrStdout().Write(buf.Bytes())
	} else {
		res, err = p.Run(ctx, req)
	}

	switch {
	case errors.Is(err, model.ErrNoVacancies):
		fmt.Fprintln(cmd.OutOrStdout(), msgNoVacancies)
		return nil
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	}

	if msg := resultMessage(res, searchDryRun); msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	logger.Debug("run finished", "run_id", res.RunID, "added", res.Added, "duplicates", res.Duplicates)
	return nil
}

// validateTop rejects a --top value that would show and save nothing.
func validateTop(n int) error {
	if n < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", n)
	}
	return nil
}

// resultMessage is the line printed after a successful run, or "" when
// nothing was written.
func resultMessage(res pipeline.Result, dryRun bool) string {
	if dryRun || res.Added+res.Duplicates == 0 {
		return ""
	}
	return msgSaved
}

// newPrinter returns a structured log printer when logs are JSON, so output
// stays machine-readable, and the styled console printer otherwise.
func newPrinter(cfg *config.Config, out io.Writer, logger *slog.Logger) model.Printer {
	if cfg.Logging.Format == "json" {
		return printer.NewLogPrinter(logger)
	}
	return printer.NewConsolePrinter(out)
}

// cancelled turns a user abort into a clean exit.
func cancelled(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return nil
	}
	return err
}
