package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
)

var graphSeed string

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect the place hierarchy",
	Long: `Inspect the gazetteer backing the classifier: resolve surface
forms to canonical names, walk ancestor chains, and list children.

Example:
  placerank graph resolve "north oakland"
  placerank graph ancestors Oakland
  placerank graph children "Allegheny County"
  placerank graph stats`,
}

var graphResolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a surface form to its canonical place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, resolver, err := graphFromSeed()
		if err != nil {
			return err
		}

		canonical, ok := resolver.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no place matches %q", args[0])
		}

		fmt.Printf("%s (%s)\n", canonical, graph.TypeOf(canonical))
		return nil
	},
}

var graphAncestorsCmd = &cobra.Command{
	Use:   "ancestors <name>",
	Short: "Show the containment chain for a place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, resolver, err := graphFromSeed()
		if err != nil {
			return err
		}

		canonical, ok := resolver.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no place matches %q", args[0])
		}

		chain := append([]string{canonical}, graph.AncestorsOf(canonical)...)
		fmt.Println(strings.Join(chain, " -> "))
		return nil
	},
}

var graphChildrenCmd = &cobra.Command{
	Use:   "children <name>",
	Short: "List the places directly contained in a place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, resolver, err := graphFromSeed()
		if err != nil {
			return err
		}

		canonical, ok := resolver.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no place matches %q", args[0])
		}

		children := graph.ChildrenOf(canonical)
		if len(children) == 0 {
			fmt.Printf("%s has no children\n", canonical)
			return nil
		}

		sort.Strings(children)
		for _, child := range children {
			fmt.Printf("%s (%s)\n", child, graph.TypeOf(child))
		}
		return nil
	},
}

var graphStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show gazetteer size and composition",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, _, err := graphFromSeed()
		if err != nil {
			return err
		}

		counts := make(map[model.PlaceType]int)
		for _, name := range graph.Names() {
			counts[graph.TypeOf(name)]++
		}

		fmt.Printf("Places:   %d\n", graph.Len())
		fmt.Printf("Patterns: %d\n", gazetteer.NewScanner(graph).PatternCount())

		order := []model.PlaceType{
			model.PlaceState,
			model.PlaceCounty,
			model.PlaceCity,
			model.PlaceMunicipality,
			model.PlaceNeighborhood,
			model.PlaceUnknown,
		}
		for _, t := range order {
			if counts[t] == 0 {
				continue
			}
			fmt.Printf("  %-14s %d\n", t, counts[t])
		}
		return nil
	},
}

func graphFromSeed() (*gazetteer.Graph, *gazetteer.Resolver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if graphSeed != "" {
		cfg.Gazetteer.SeedFile = graphSeed
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return nil, nil, err
	}

	return graph, gazetteer.NewResolver(graph, cfg.Gazetteer.FuzzyThreshold), nil
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.PersistentFlags().StringVar(&graphSeed, "seed", "", "gazetteer seed file (JSON or YAML)")

	graphCmd.AddCommand(graphResolveCmd)
	graphCmd.AddCommand(graphAncestorsCmd)
	graphCmd.AddCommand(graphChildrenCmd)
	graphCmd.AddCommand(graphStatsCmd)
}
