package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/resolve"
	"github.com/dnaka91/mabo/pkg/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check schema_file...",
	Short: "Check one or more mabo schema files.",
	Long: `Check a set of mabo schema files: parse, validate structural rules, and
resolve every cross-schema type reference. Every file's diagnostics are
printed; the command exits nonzero if any file failed any stage.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		files := readSchemas(args)

		failed := false
		named := make([]resolve.Named, len(files))

		for i, file := range files {
			log.Debugf("parsing %s", file.Path())

			schema, diags := parser.Parse(file)
			diags = append(diags, validate.Schema(schema)...)

			if printDiagnostics(file, diags) {
				failed = true
			}

			named[i] = resolve.Named{Name: schemaName(file.Path()), Schema: schema}
		}

		if !failed {
			// resolve.Resolve's diagnostic may originate from any of the
			// input schemas, and carries no back-pointer to which one; print
			// it without a source snippet rather than rendering it against
			// the wrong file.
			if d := resolve.Resolve(named); d != nil {
				fmt.Println(d.Error())
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}

		fmt.Printf("%d schema(s) checked, no problems found\n", len(files))
	},
}

// schemaName derives the name other schemas reference path via: the file's
// base name without its .mabo extension.
func schemaName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
