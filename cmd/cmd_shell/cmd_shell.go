// file: radixmap/cmd/cmd_shell/cmd_shell.go
package cmd_shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/maatini/radixmap/cliout"
	"github.com/maatini/radixmap/dataset"
	"github.com/maatini/radixmap/radix"
	"github.com/maatini/radixmap/store"
)

var dbDriver, dbDSN string

// Cmd opens an interactive shell over a rebuilt map: "get <key>", "stats",
// "quit". Lines are tokenized with shlex so quoted keys containing spaces
// work the way a shell would parse them.
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell for querying a radix map",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(dbDriver, dbDSN)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.Load()
		if err != nil {
			return err
		}

		m, err := radix.New(dataset.ToEntries(dataset.FromStoreRecords(records)))
		if err != nil {
			return err
		}

		return runShell(os.Stdin, os.Stdout, m)
	},
}

func runShell(in io.Reader, out io.Writer, m *radix.Map[radix.StringKey, string]) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "radixmap shell (%d entries); commands: get <key>, stats, quit\n", m.Len())

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		tokens, err := shlex.Split(scanner.Text())
		if err != nil || len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return nil
		case "stats":
			cliout.PrintStats(out, m.Stats())
		case "get":
			if len(tokens) != 2 {
				fmt.Fprintln(out, "usage: get <key>")
				continue
			}
			if value, ok := m.Get(radix.StringKey(tokens[1])); ok {
				cliout.PrintHit(out, tokens[1], value)
			} else {
				cliout.PrintMiss(out, tokens[1])
			}
		default:
			fmt.Fprintf(out, "unknown command %q\n", tokens[0])
		}
	}
}

func init() {
	Cmd.Flags().StringVar(&dbDriver, "db-driver", "sqlite", "store driver (sqlite or postgres)")
	Cmd.Flags().StringVar(&dbDSN, "db-dsn", "radixmap.db", "store data source name")
}
