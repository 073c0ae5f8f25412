// Command hamlist prints every Hamiltonian cycle of each graph read from
// its arguments, grounded on original_source/example_listing.c.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/internal/hamcli"
	"github.com/katalvlaran/hamilton/search"
	"github.com/katalvlaran/hamilton/vertexorder"
)

func main() {
	opts := &hamcli.Options{}
	cmd := &cobra.Command{
		Use:   "hamlist [flags] file...",
		Short: "List the Hamiltonian cycles of one or more graphs",
		Long: `hamlist reads each graph from the given files (GraphIO text or legacy
binary format; a bare "-" or no files at all reads stdin) and prints
every Hamiltonian cycle it contains, rotated to start at vertex 1 and
oriented by the smaller-labeled neighbor of 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(hamcli.Args(args), opts)
		},
	}
	hamcli.BindFlags(cmd, opts)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(files []string, opts *hamcli.Options) error {
	log := hamcli.Logger()
	return hamcli.WalkFiles(files, log, func(g *search.Graph, source string) error {
		if err := listCycles(g, opts.Prune); err != nil {
			return fmt.Errorf("hamlist: %s: %w", source, err)
		}
		return nil
	})
}

func listCycles(g *search.Graph, prune bool) error {
	s, err := search.AllocateState(g.N)
	if err != nil {
		return err
	}
	defer s.Release()

	order := vertexorder.DegreeDescending(g.N, g.Degree)
	if err := s.Init(g, order); err != nil {
		return err
	}

	fmt.Printf("%s:\n", g.Name)
	if prune {
		for ok := s.FirstCycleWithPruning(); ok; ok = s.NextCycleWithPruning() {
			printCycle(s)
		}
	} else {
		for ok := s.FirstCycle(); ok; ok = s.NextCycle() {
			printCycle(s)
		}
	}
	return nil
}

// printCycle prints the current cycle starting at vertex 1, oriented so
// that the smaller-labeled neighbor of 1 comes second.
func printCycle(s *search.State) {
	rot := s.RotatedCycle()
	cycle := append([]int{1}, rot[:len(rot)-1]...)
	if n := len(cycle); n > 2 && cycle[1] > cycle[n-1] {
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			cycle[i], cycle[j] = cycle[j], cycle[i]
		}
	}
	parts := make([]string, len(cycle))
	for i, v := range cycle {
		parts[i] = fmt.Sprintf("%d", v)
	}
	fmt.Printf("< %s >\n", strings.Join(parts, " "))
}
