// file: radixmap/cmd/cmd_build/cmd_build.go
package cmd_build

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maatini/radixmap/cliout"
	"github.com/maatini/radixmap/dataset"
	"github.com/maatini/radixmap/radix"
	"github.com/maatini/radixmap/store"
)

var dbDriver, dbDSN string

// Cmd builds a map from a dataset file, then persists the dataset and an
// audit row of the map's stats to the store (the map itself is not stored).
var Cmd = &cobra.Command{
	Use:   "build <dataset.json>",
	Short: "Build a radix map from a dataset file and persist the dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := dataset.LoadJSON(args[0])
		if err != nil {
			return err
		}

		m, err := radix.New(dataset.ToEntries(records))
		if err != nil {
			return fmt.Errorf("build map: %w", err)
		}

		s, err := store.Open(dbDriver, dbDSN)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Replace(dataset.ToStoreRecords(records)); err != nil {
			return fmt.Errorf("persist dataset: %w", err)
		}

		stats := m.Stats()
		if err := s.RecordStats(stats); err != nil {
			return fmt.Errorf("record build audit: %w", err)
		}

		fmt.Printf("persisted to %s (%s)\n", dbDSN, dbDriver)
		cliout.PrintStats(os.Stdout, stats)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVar(&dbDriver, "db-driver", "sqlite", "store driver (sqlite or postgres)")
	Cmd.Flags().StringVar(&dbDSN, "db-dsn", "radixmap.db", "store data source name")
}
