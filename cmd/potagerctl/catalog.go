package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogRepoImp "potager/pkg/catalog/repositoryImp"
	"potager/pkg/catalog/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reload the plant catalog",
	Long:  `Replace the plant catalog with the embedded plants, plus the rows of CATALOG_XLSX when it is set.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, cfg.CatalogXLSX)
	},
}

var importXLSXCmd = &cobra.Command{
	Use:   "import-xlsx <file>",
	Short: "Reload the plant catalog from a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, args[0])
	},
}

func runSeed(cmd *cobra.Command, xlsxPath string) error {
	n, err := seed.Seed(cmd.Context(), catalogRepoImp.New(store), xlsxPath, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "catalog loaded: %d plants\n", n)
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importXLSXCmd)
}
