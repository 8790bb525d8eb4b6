package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caseloom/caseloom-cli/internal/suite"
	"github.com/caseloom/caseloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var initDescription string

var initCmd = &cobra.Command{
	Use:   "init <suite-name>",
	Short: "Initialize a new CaseLoom suite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		root, err := defaultSuitesDir()
		if err != nil {
			return err
		}
		suiteDir := filepath.Join(root, name)
		// Refuse to overwrite an existing suite.
		if info, err := os.Stat(suiteDir); err == nil && info.IsDir() {
			suiteFile := filepath.Join(suiteDir, "suite.json")
			if _, err := os.Stat(suiteFile); err == nil {
				return fmt.Errorf("suite already exists at %s", suiteDir)
			}
			entries, err := os.ReadDir(suiteDir)
			if err != nil {
				return fmt.Errorf("inspect suite directory: %w", err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("directory %s already exists and is not empty; refusing to initialize suite", suiteDir)
			}
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("stat suite directory: %w", err)
		}
		if err := utils.EnsureDir(suiteDir); err != nil {
			return err
		}
		s := suite.New(name, initDescription, suiteDir)
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Suite initialized: %s\n", suiteDir)
		return nil
	},
}

func defaultSuitesDir() (string, error) {
	if cfg != nil && cfg.SuitesDir != "" {
		dir := cfg.SuitesDir
		if strings.HasPrefix(dir, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dir = strings.TrimPrefix(dir, "~")
			dir = strings.TrimPrefix(dir, string(os.PathSeparator))
			dir = strings.TrimPrefix(dir, "/")
			dir = filepath.Join(home, dir)
		}
		dir = filepath.Clean(dir)
		if err := utils.EnsureDir(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".caseloom", "suites")
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func resolveSuiteDirByName(name string) (string, error) {
	if name == "" {
		return "", errors.New("suite name is required")
	}
	root, err := defaultSuitesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initDescription, "desc", "d", "", "suite description")
}
