package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/linker/internal/games/linker/layout"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms [layout]",
	Short: "Describe the rooms of a layout",
	Long: `Shows every room of a layout with its brick and pot counts and its
neighbors. Without an argument the --layout flag or the embedded map is used.

Examples:
  linker rooms
  linker rooms ./dungeon.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRooms,
}

func runRooms(cmd *cobra.Command, args []string) {
	path := flagLayout
	if len(args) == 1 {
		path = args[0]
	}

	lay, err := layout.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := layout.Summarize(lay)
	fmt.Printf("Layout %q, starting room %s\n", s.Name, s.ActiveRoom)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Room" header
	for _, r := range s.Rooms {
		if len(r.Name) > maxNameLen {
			maxNameLen = len(r.Name)
		}
	}

	fmt.Printf("  %-*s  %6s  %4s  %s\n", maxNameLen, "Room", "Bricks", "Pots", "Neighbors")
	fmt.Printf("  %-*s  %6s  %4s  %s\n", maxNameLen, "----", "------", "----", "---------")

	for _, r := range s.Rooms {
		neighbors := "-"
		if len(r.Neighbors) > 0 {
			neighbors = strings.Join(r.Neighbors, " ")
		}
		marker := " "
		if r.Name == s.ActiveRoom {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %6d  %4d  %s\n", marker, maxNameLen, r.Name, r.Bricks, r.Pots, neighbors)
	}

	fmt.Println()
	fmt.Println("* starting room")
}
