package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/jasimarif/psychology-app/cmd/http"
	systemcmd "github.com/jasimarif/psychology-app/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "psychapp",
	Short: "Booking backend for therapy sessions.",
	Long: `psychapp schedules therapy sessions between clients and providers.
It serves provider availability, takes bookings, confirms them on payment
and provisions the video meeting and notifications for every session.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
