package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnaka91/mabo/pkg/parser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt schema_file",
	Short: "Reformat a mabo schema file to its canonical style.",
	Long: `Parse a schema and print it back in mabo's canonical, stable formatting.
Writes to stdout unless -w is given, in which case the file is rewritten in
place.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		files := readSchemas(args)
		file := files[0]

		schema, diags := parser.Parse(file)

		if printDiagnostics(file, diags) {
			os.Exit(1)
		}

		out := parser.Print(schema)

		if GetFlag(cmd, "write") {
			if err := os.WriteFile(file.Path(), []byte(out), 0o644); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			return
		}

		fmt.Print(out)
	},
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite the file in place instead of printing to stdout")
	rootCmd.AddCommand(fmtCmd)
}
