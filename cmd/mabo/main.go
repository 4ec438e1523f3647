// Command mabo is the entry point for the mabo schema compiler and toolbox.
package main

import "github.com/dnaka91/mabo/pkg/cmd"

func main() {
	cmd.Execute()
}
