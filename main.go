// main is the entry point for the hiresignal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/hiresignal/cmd"
)

func main() {
	err := cmd.Execute()
	cmd.Shutdown()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
