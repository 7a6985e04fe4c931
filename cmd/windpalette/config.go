// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage WindPalette configuration",
	Long:  "View and modify WindPalette configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fatal("%v", err)
		}

		fmt.Println(config.GetString(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fatal("%v", err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fatal("setting config: %v", err)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fatal("%v", err)
		}

		printSettings("", config.GetAll())
	},
}

// printSettings prints nested settings as sorted dotted keys. Secrets are
// masked.
func printSettings(prefix string, values map[string]interface{}) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := values[k].(type) {
		case map[string]interface{}:
			printSettings(key, v)
		default:
			if isSecret(key) && fmt.Sprint(v) != "" {
				v = "********"
			}
			fmt.Printf("%s: %v\n", key, v)
		}
	}
}

func isSecret(key string) bool {
	switch key {
	case "auth.jwt_secret", "auth.google_client_secret", "ai.api_key":
		return true
	}
	return false
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig loads the configuration and sets up logging
func initConfig() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if err := config.InitConfig(path); err != nil {
		return err
	}

	logging.Setup(config.GetString("log.level"), config.GetString("log.format"))
	return nil
}
