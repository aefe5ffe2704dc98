package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/vacancies/internal/printer"
)

var listMinSalary float64

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print saved vacancies",
	Long:  "Prints saved vacancies in title order, or only those whose salary starts at --min-salary or more.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().Float64Var(&listMinSalary, "min-salary", 0, "only vacancies whose salary starts at this amount or more")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()

	vacancyStore, closeStore, err := openStore(cfg, false, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	p := printer.NewConsolePrinter(cmd.OutOrStdout())

	if cmd.Flags().Changed("min-salary") {
		vacancies, err := vacancyStore.BySalaryAtLeast(listMinSalary)
		if err != nil {
			return err
		}
		if len(vacancies) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), msgNoVacancies)
			return nil
		}
		return p.Print(vacancies)
	}

	saved, err := vacancyStore.All()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), msgNoVacancies)
		return nil
	}
	return p.PrintStored(saved)
}
