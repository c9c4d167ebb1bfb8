package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/games/linker/layout"
)

var validateCmd = &cobra.Command{
	Use:   "validate [layout...]",
	Short: "Check config and layout files",
	Long: `Loads the tuning config and each given layout file and reports whether
they are valid. Exits with status 1 if any file fails.

Examples:
  linker validate ./dungeon.yaml ./caves.toml
  linker validate --config ./fast.yaml`,
	Run: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	failed := 0

	cfgName := flagConfig
	if cfgName == "" {
		cfgName = "config (search path)"
	}
	if _, err := config.LoadLinker(flagConfig); err != nil {
		fmt.Printf("FAIL  %s: %v\n", cfgName, err)
		failed++
	} else {
		fmt.Printf("ok    %s\n", cfgName)
	}

	paths := args
	if len(paths) == 0 && flagLayout != "" {
		paths = []string{flagLayout}
	}
	if len(paths) == 0 {
		if _, err := layout.Default(); err != nil {
			fmt.Printf("FAIL  embedded layout: %v\n", err)
			failed++
		} else {
			fmt.Println("ok    embedded layout")
		}
	}

	for _, p := range paths {
		lay, err := layout.Load(p)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", p, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s (%q, %d rooms)\n", p, lay.Name, len(lay.Rooms))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) failed validation\n", failed)
		os.Exit(1)
	}
}
