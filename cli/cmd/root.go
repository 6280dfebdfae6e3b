// ABOUTME: Root command for the assetdex CLI
// ABOUTME: Handles global flags and layered configuration via viper

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultAPIURL = "http://localhost:8080"

var (
	cfgFile string
	v       *viper.Viper
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "assetdex",
	Short: "CLI for the AssetDex rack-space service",
	Long: `assetdex is a command-line interface for the AssetDex rack-space service.

It lists racks, renders rack elevations, and checks whether a device fits at a
position so provisioning scripts can fail fast on conflicts.

Configuration (highest priority first):
  --api-url / --json flags
  ASSETDEX_API_URL, ASSETDEX_JSON environment variables
  $HOME/.assetdex.yaml (api_url, json)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.assetdex.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "Backend API URL (overrides ASSETDEX_API_URL)")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON instead of human-readable text")

	v = newConfig()
}

// newConfig builds the viper instance backing the global flags.
func newConfig() *viper.Viper {
	cv := viper.New()
	_ = cv.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = cv.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	cv.SetDefault("api_url", defaultAPIURL)
	cv.SetEnvPrefix("ASSETDEX")
	cv.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cv.AutomaticEnv()
	return cv
}

// loadConfig reads the optional config file. A missing default file is not an error.
func loadConfig() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".assetdex")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// runner is the body of a command: it writes to w and returns the process exit code.
type runner func(ctx context.Context, w io.Writer, args []string) int

// withExitCode adapts a runner to cobra. SIGINT and SIGTERM cancel ctx.
func withExitCode(run runner) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		code := run(ctx, cmd.OutOrStdout(), args)
		cancel()
		if code != 0 {
			os.Exit(code)
		}
	}
}

// GetAPIURL returns the API URL from flag, env, config file, or default (in priority order)
func GetAPIURL() string {
	return strings.TrimRight(v.GetString("api_url"), "/")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return v.GetBool("json")
}
