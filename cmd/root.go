package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/caseloom/caseloom-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "caseloom",
	Short: "CaseLoom CLI: extract document text and weave test cases into spreadsheets",
	Long:  `CaseLoom is a CLI tool that extracts text from PDF, DOCX, and TXT documents, parses marker-delimited test-case blocks, and exports them as styled XLSX workbooks.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.caseloom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// checkFileSize rejects inputs above the configured size ceiling before any
// extraction work starts.
func checkFileSize(path string) error {
	if cfg == nil || cfg.MaxFileSizeMB <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	limit := int64(cfg.MaxFileSizeMB) * 1024 * 1024
	if info.Size() > limit {
		return fmt.Errorf("file too large: %d bytes (max %d MB)", info.Size(), cfg.MaxFileSizeMB)
	}
	return nil
}

func caseSheetName() string {
	if cfg != nil && cfg.CaseSheetName != "" {
		return cfg.CaseSheetName
	}
	return ""
}

func contentSheetName() string {
	if cfg != nil && cfg.ContentSheetName != "" {
		return cfg.ContentSheetName
	}
	return ""
}
