// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "windpalette",
	Short: "WindPalette - Tailwind CSS color theme generator",
	Long: `WindPalette generates, previews, saves and shares Tailwind CSS color themes.

Run "windpalette server start" for the web service, or use the palette
commands to work with colors from the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $WINDPALETTE_CONFIG or ~/.windpalette/config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fatal prints the error and exits
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
