package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnaka91/mabo/pkg/codegen"
	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/resolve"
	"github.com/dnaka91/mabo/pkg/validate"
)

var generateCmd = &cobra.Command{
	Use:   "generate schema_file",
	Short: "Generate Go source from a mabo schema.",
	Long:  `Parse, validate, resolve, and simplify a schema, then render its types as Go source.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		pkg := GetString(cmd, "package")
		output := GetString(cmd, "output")

		files := readSchemas(args)
		file := files[0]

		schema, diags := parser.Parse(file)
		diags = append(diags, validate.Schema(schema)...)

		if printDiagnostics(file, diags) {
			os.Exit(1)
		}

		if d := resolve.Resolve([]resolve.Named{{Name: schemaName(file.Path()), Schema: schema}}); d != nil {
			fmt.Println(d.Error())
			os.Exit(1)
		}

		simplified := ir.Simplify(schema)

		out := os.Stdout

		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			defer f.Close()

			out = f
		}

		if err := codegen.Generate(simplified, pkg, out); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().String("package", "mabo", "Go package name for the generated file")
	generateCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
	rootCmd.AddCommand(generateCmd)
}
