// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/paletta/internal/config"
	"github.com/jmylchreest/paletta/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool

	// Resolved environment defaults, populated before any command runs.
	cfg config.Config

	// logger writes diagnostics to stderr; data output goes to stdout.
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "paletta",
		Short: "A colour quantization and palette analysis toolkit",
		Long: `Paletta extracts perceptually distinct colour palettes from images and
provides colour-science tooling around them: conversions between colour
spaces, perceptual distance, harmony schemes, palette completion advice,
gradients and palette similarity scoring.

Extraction is deterministic: the same image and options always produce the
same palette.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(similarityCmd)
}

// setup resolves environment defaults and builds the logger before any
// command body runs.
func setup(cmd *cobra.Command, args []string) error {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "paletta",
		Level:  level,
		Output: os.Stderr,
	})

	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
