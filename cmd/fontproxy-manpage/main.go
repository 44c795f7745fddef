package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fontproxy/cmd/fontproxy"
	"github.com/arthur-debert/fontproxy/internal/version"
)

func main() {
	rootCmd := fontproxy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FONTPROXY",
		Section: "1",
		Source:  "fontproxy " + version.Version,
		Manual:  "fontproxy manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
