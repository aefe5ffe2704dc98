package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/vacancies/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved vacancies interactively (TUI)",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()

	vacancyStore, closeStore, err := openStore(cfg, false, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	saved, err := vacancyStore.All()
	if err != nil {
		return err
	}
	if err := browse.Run(saved); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
