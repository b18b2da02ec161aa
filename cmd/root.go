// file: radixmap/cmd/root.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maatini/radixmap/cmd/cmd_build"
	"github.com/maatini/radixmap/cmd/cmd_lookup"
	"github.com/maatini/radixmap/cmd/cmd_serve"
	"github.com/maatini/radixmap/cmd/cmd_shell"
)

var rootCmd = &cobra.Command{
	Use:   "radixmap",
	Short: "Build and query static radix lookup maps",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func init() {
	rootCmd.AddCommand(cmd_build.Cmd)
	rootCmd.AddCommand(cmd_lookup.Cmd)
	rootCmd.AddCommand(cmd_serve.Cmd)
	rootCmd.AddCommand(cmd_shell.Cmd)
}
