package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/printdex/printdex/internal/build"
	"github.com/printdex/printdex/internal/config"
	"github.com/printdex/printdex/pkg/constants"
)

var outputDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run a full catalog build",
	Long: `Build fetches printer definitions from both upstreams, merges
them into one deduplicated catalog, and writes printers.json and
metadata.json to the output directory. A run always produces valid
output; unreachable upstreams shrink the catalog instead of failing it.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default \"data\")")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	} else if dir := viper.GetString("output_dir"); dir != "" {
		cfg.OutputDir = dir
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.BuildTimeout)
	defer cancel()

	result, err := build.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	meta := result.Metadata
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Build complete")
	fmt.Fprintf(out, "  Total printers: %d\n", meta.TotalPrinters)
	fmt.Fprintf(out, "  FDM: %d\n", meta.FDMCount)
	fmt.Fprintf(out, "  SLA: %d\n", meta.SLACount)
	fmt.Fprintf(out, "  With images: %d\n", meta.WithImages)
	fmt.Fprintf(out, "  Brands: %d\n", meta.BrandCount)
	fmt.Fprintf(out, "  Updated: %s\n", meta.LastUpdated)
	fmt.Fprintf(out, "  Printers: %s\n", result.PrintersPath)
	fmt.Fprintf(out, "  Metadata: %s\n", result.MetadataPath)
	return nil
}
