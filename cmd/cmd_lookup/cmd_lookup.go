// file: radixmap/cmd/cmd_lookup/cmd_lookup.go
package cmd_lookup

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/maatini/radixmap/cliout"
	"github.com/maatini/radixmap/dataset"
	"github.com/maatini/radixmap/radix"
	"github.com/maatini/radixmap/store"
)

var dbDriver, dbDSN string

// Cmd loads the persisted dataset, rebuilds the map, and looks up one key.
var Cmd = &cobra.Command{
	Use:   "lookup <key>",
	Short: "Rebuild the map from the store and look up a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMap()
		if err != nil {
			return err
		}

		key := args[0]
		value, ok := m.Get(radix.StringKey(key))
		if !ok {
			cliout.PrintMiss(os.Stdout, key)
			return nil
		}
		cliout.PrintHit(os.Stdout, key, value)
		return nil
	},
}

func loadMap() (*radix.Map[radix.StringKey, string], error) {
	s, err := store.Open(dbDriver, dbDSN)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	return radix.New(dataset.ToEntries(dataset.FromStoreRecords(records)))
}

func init() {
	Cmd.Flags().StringVar(&dbDriver, "db-driver", "sqlite", "store driver (sqlite or postgres)")
	Cmd.Flags().StringVar(&dbDSN, "db-dsn", "radixmap.db", "store data source name")
}
