package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnaka91/mabo/pkg/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run a language server over stdio.",
	Long:  `Run mabo's language server, speaking LSP over stdin/stdout, for editor integration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if err := lsp.Serve(context.Background(), stdio{}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// stdio adapts os.Stdin/os.Stdout to io.ReadWriteCloser for lsp.Serve.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdio) Close() error                { return nil }

func init() {
	rootCmd.AddCommand(lspCmd)
}
