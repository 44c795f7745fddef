package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fontproxy/cmd/fontproxy"
	"github.com/arthur-debert/fontproxy/pkg/style"
)

func main() {
	rootCmd := fontproxy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
