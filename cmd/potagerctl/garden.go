package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gardenRepoImp "potager/pkg/garden/repositoryImp"
	"potager/pkg/watering"
	wateringRepoImp "potager/pkg/watering/repositoryImp"
)

var dedupeGardenCmd = &cobra.Command{
	Use:   "dedupe-garden",
	Short: "Remove duplicate garden entries",
	Long: `Keep one garden entry for each (user, plant, custom name), preferring the
oldest one with a watering schedule. Watering history of the removed duplicates
is moved onto the kept entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := gardenRepoImp.New(store).DedupeByPlant(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d duplicate entries\n", n)
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run one watering reminder sweep",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := watering.NewReminder(wateringRepoImp.New(store), gardenRepoImp.New(store), log.Named("reminder"))
		due, err := r.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d entries due for watering\n", due)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dedupeGardenCmd)
	rootCmd.AddCommand(remindCmd)
}
