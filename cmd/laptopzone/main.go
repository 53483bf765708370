// Command laptopzone talks to a running LaptopZoneLB API: sign in, seed the
// launch catalog, browse listings and ask the advisor.
package main

import (
	"fmt"
	"os"

	"github.com/Kariqs/laptopzone-api/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	apiURL  string
	token   string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "laptopzone",
	Short: "LaptopZoneLB catalog CLI",
	Long: `laptopzone drives the LaptopZoneLB API from the terminal.

Admin commands need a bearer token: pass --token, set LAPTOPZONE_TOKEN,
or run "laptopzone login" and export the printed token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("LAPTOPZONE_API", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("LAPTOPZONE_TOKEN"), "bearer token for admin commands")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(loginCmd, seedCmd, productsCmd, recommendCmd)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newClient() *client.Client {
	c := client.New(apiURL)
	if token != "" {
		c.SetToken(token)
	}
	return c
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
