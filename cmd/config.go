package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/caseloom/caseloom-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set CaseLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("suites_dir: %s\n", cfg.SuitesDir)
		fmt.Printf("case_sheet_name: %s\n", cfg.CaseSheetName)
		fmt.Printf("content_sheet_name: %s\n", cfg.ContentSheetName)
		fmt.Printf("max_file_size_mb: %d\n", cfg.MaxFileSizeMB)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "suites_dir":
			cfg.SuitesDir = val
		case "case_sheet_name":
			cfg.CaseSheetName = val
		case "content_sheet_name":
			cfg.ContentSheetName = val
		case "max_file_size_mb":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("max_file_size_mb must be a positive integer")
			}
			cfg.MaxFileSizeMB = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
