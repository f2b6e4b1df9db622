package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "placerank",
	Short: "Placerank - geographic entity resolution for local news",
	Long: `Placerank tags news articles with the canonical Pittsburgh-region
places they are about.

It extracts candidate place mentions, filters implausible usages
(sports teams, universities, companies), validates how each mention is
used, scores contextual signals, and resolves mentions against a place
hierarchy. The output is a ranked list of canonical place names with a
confidence score for each.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("placerank v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.placerank/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".placerank"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match PLACERANK_*
	viper.SetEnvPrefix("PLACERANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig overlays the config file and environment onto the defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	cfg.Output.Verbose = cfg.Output.Verbose || verbose

	return cfg, nil
}

// loadGraph builds the place graph from the configured seed
func loadGraph(cfg *model.Config) (*gazetteer.Graph, error) {
	graph, err := gazetteer.LoadGraph(cfg.Gazetteer.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load gazetteer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Gazetteer: %d places\n", graph.Len())
	}

	return graph, nil
}

// pipelineFlags are the per-command overrides shared by classify,
// batch, and watch
type pipelineFlags struct {
	minConfidence float64
	mentions      bool
	recognizer    string
	similarity    string
	seed          string
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.minConfidence, "min-confidence", -1, "confidence cutoff, 0..1 (default from config)")
	cmd.Flags().BoolVar(&f.mentions, "mentions", false, "include per-mention detail in JSON output")
	cmd.Flags().StringVar(&f.recognizer, "recognizer", "", "entity recognizer provider (prose, openai, none)")
	cmd.Flags().StringVar(&f.similarity, "similarity", "", "semantic similarity provider (lexical, openai, none)")
	cmd.Flags().StringVar(&f.seed, "seed", "", "gazetteer seed file (JSON or YAML)")
}

func (f *pipelineFlags) apply(cfg *model.Config) {
	if f.minConfidence >= 0 {
		cfg.Pipeline.MinConfidence = f.minConfidence
	}
	if f.mentions {
		cfg.Output.IncludeMentions = true
	}
	if f.recognizer != "" {
		cfg.Recognizer.Provider = providerOrNone(f.recognizer)
	}
	if f.similarity != "" {
		cfg.Similarity.Provider = providerOrNone(f.similarity)
	}
	if f.seed != "" {
		cfg.Gazetteer.SeedFile = f.seed
	}
}

// providerOrNone maps the explicit "none" to a disabled provider
func providerOrNone(name string) string {
	if strings.EqualFold(name, "none") {
		return ""
	}
	return name
}
