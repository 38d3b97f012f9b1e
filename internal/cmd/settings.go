package cmd

import (
	"fmt"

	"github.com/cinedeck/cli/pkg/config"
	"github.com/cinedeck/cli/pkg/formatter"
	"github.com/spf13/cobra"
)

// Keys exposed through `settings`; everything else stays config-file only.
var settingsKeys = []string{
	"api.base_url",
	"api.timeout",
	"output.format",
	"recommend.limit",
	"log.file",
	"log.level",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI settings",
	Long:  "Read and write persisted configuration values",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			fmt.Println(config.GetString(args[0]))
			return nil
		}

		record := make(map[string]interface{}, len(settingsKeys))
		for _, key := range settingsKeys {
			record[key] = config.GetString(key)
		}
		formatter.PrintKeyValue(record)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set and persist a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		known := false
		for _, k := range settingsKeys {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := config.SetString(key, value); err != nil {
			return fmt.Errorf("failed to persist setting: %w", err)
		}

		formatter.PrintSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
