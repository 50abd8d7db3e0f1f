// SPDX-License-Identifier: MIT

// Command lvbrain inspects, generates and rescales brain connectivity
// archives and reports spectral datatype summaries.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvbrain/cmd/lvbrain/commands"
	"github.com/katalvlaran/lvbrain/logger"
)

func main() {
	defer logger.Sync()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
