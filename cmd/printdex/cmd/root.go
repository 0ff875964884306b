package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/printdex/printdex/pkg/logging"
)

var (
	configFile string
	verbose    bool
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "printdex",
	Short: "3D printer hardware catalog builder",
	Long: `Printdex builds a unified catalog of 3D-printer hardware
specifications by harvesting machine definitions from the OrcaSlicer
profile tree (FDM) and the UVtools machine table (SLA), reconciling
them into a single deduplicated record set.`,
	PersistentPreRun: setupLogging,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "sources config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
}

// initConfig reads env vars and an optional .env file into viper.
func initConfig() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	viper.SetEnvPrefix("PRINTDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging(cmd *cobra.Command, args []string) {
	switch {
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	logging.SetDefault(logging.Default().Level(zerolog.GlobalLevel()))
}
