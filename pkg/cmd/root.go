// Package cmd implements the mabo CLI's subcommands, following the
// teacher's pkg/cmd layout: one file per subcommand, a shared rootCmd, and
// a GetFlag/GetString-style helper set (util.go) so subcommands never call
// cobra's error-returning flag accessors directly.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled in at build time via -ldflags; left empty for a `go
// install` build, like the teacher's own Version var.
var Version string

var rootCmd = &cobra.Command{
	Use:   "mabo",
	Short: "A compiler and toolbox for the mabo interface definition language.",
	Long:  "A compiler and general toolbox for mabo schemas: parse, validate, resolve, generate code, and serve an editor language server.",
	Run: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("mabo ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()
		}
	},
}

// Execute adds all child commands to rootCmd and runs it. Called once by
// cmd/mabo's main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
