package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vantala-vaani/internal/core/dataset"
	"vantala-vaani/internal/core/language"
	"vantala-vaani/internal/core/qa"
	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"
	"vantala-vaani/internal/storage/csvstore"
)

var (
	inputPath string
	outputDir string
	exportFmt string
	statsOnly bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Preprocess collected recipe submissions into training datasets",
	Long: `Reads the recipe submission CSV, removes duplicates, normalizes and
translates text, expands each recipe into Q&A pairs, and exports the
result as training dataset artifacts.`,
	SilenceUsage: true,
	RunE:         runPreprocess,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV file (default from config)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	rootCmd.Flags().StringVar(&exportFmt, "format", "", "export format: standard, instruction, or conversational")
	rootCmd.Flags().BoolVar(&statsOnly, "stats-only", false, "print store statistics without running the pipeline")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logLevel := cfg.LogLevel
	if verbose {
		logLevel = "debug"
	}
	if err := common.InitLogger(logLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer common.Sync()

	if inputPath != "" {
		cfg.Store.CSVPath = inputPath
	}
	if outputDir != "" {
		cfg.Pipeline.OutputDir = outputDir
	}
	if exportFmt != "" {
		cfg.Pipeline.Format = exportFmt
	}

	store := csvstore.NewStore(cfg.Store.CSVPath)

	if statsOnly {
		return printStoreStats(store)
	}

	var cache *language.TranslationCache
	if cfg.Cache.Enabled {
		cache = language.NewTranslationCache(cfg)
		defer cache.Close()
	}

	classifier := language.NewClassifier(cfg, cache)
	assembler := dataset.NewAssembler(store, classifier, qa.NewExpander())

	result, err := assembler.Run(cmd.Context())
	if err != nil {
		common.LogError("preprocessing failed", zap.Error(err))
		return fmt.Errorf("preprocess: %w", err)
	}

	exporter := dataset.NewExporter(cfg.Pipeline.OutputDir)
	files, err := exporter.Export(result, cfg.Pipeline.Format)
	if err != nil {
		common.LogError("export failed", zap.Error(err))
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Processed %d recipes (%d duplicates removed), %d Q&A pairs.\n",
		len(result.Recipes), result.DuplicateCount, len(result.QAPairs))
	fmt.Println("Artifacts:")

	kinds := make([]string, 0, len(files))
	for kind := range files {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %s: %s\n", kind, files[kind])
	}

	return nil
}

func printStoreStats(store *csvstore.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}

	fmt.Printf("Store: %s\n", store.Path())
	fmt.Printf("Total recipes:   %d\n", stats.TotalRecipes)
	fmt.Printf("Telugu recipes:  %d\n", stats.TeluguRecipes)
	fmt.Printf("English recipes: %d\n", stats.EnglishRecipes)
	if stats.EarliestRecipe != "" {
		fmt.Printf("Earliest: %s\n", stats.EarliestRecipe)
		fmt.Printf("Latest:   %s\n", stats.LatestRecipe)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
