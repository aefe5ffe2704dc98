package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/vacancies/internal/model"
)

const msgNotFound = "Вакансия не найдена."

var (
	deleteTitle string
	deleteLink  string
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a saved vacancy by title and link",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteTitle, "title", "", "vacancy title (exact)")
	deleteCmd.Flags().StringVar(&deleteLink, "link", "", "vacancy link (exact)")
	deleteCmd.MarkFlagRequired("title")
	deleteCmd.MarkFlagRequired("link")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()

	vacancyStore, closeStore, err := openStore(cfg, false, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	removed, err := vacancyStore.Delete(model.Key{Title: deleteTitle, Link: deleteLink})
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), msgNotFound)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Удалено вакансий: %d\n", removed)
	return nil
}
