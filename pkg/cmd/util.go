package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/source"
)

// GetFlag gets an expected bool flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readSchemas reads every named source file. It does not parse them: the
// first file that cannot be read (or is not valid UTF-8) has its error
// printed and the process exits with status 1, mirroring the teacher's
// ReadConstraintFiles "fail loud, fail once" shape.
func readSchemas(paths []string) []*source.File {
	files, err := source.ReadFiles(paths...)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return files
}

// printDiagnostics renders every diagnostic in diags against file using a
// diag.PlainRenderer, returning true if any were printed.
func printDiagnostics(file *source.File, diags []*diag.Diagnostic) bool {
	if len(diags) == 0 {
		return false
	}

	fmt.Println(diag.PlainRenderer{}.Render(file, diags))

	return true
}
