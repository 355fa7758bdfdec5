package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/drvaldez/consultorio_backend/cmd/http"
	systemcmd "github.com/drvaldez/consultorio_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "consultorio",
	Short: "Backend for a single-doctor clinic: patients, agenda, and clinical history.",
	Long: `Consultorio is the backend for a single-doctor medical practice.
It manages the patient registry, the appointment agenda with its slot
calendar, and the per-patient clinical history and reports.`,
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
