package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/caseloom/caseloom-cli/internal/suite"
	"github.com/spf13/cobra"
)

var (
	addSuiteName string
	addDocDesc   string
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Extract a document and add it to a suite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		if addSuiteName == "" {
			return fmt.Errorf("--suite is required")
		}
		if err := checkFileSize(file); err != nil {
			return err
		}
		suiteDir, err := resolveSuiteDirByName(addSuiteName)
		if err != nil {
			return err
		}
		s, err := suite.Load(suiteDir)
		if err != nil {
			return err
		}
		if err := s.AddDocument(file, addDocDesc); err != nil {
			return err
		}
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Document added: %s\n", filepath.Base(file))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addSuiteName, "suite", "s", "", "suite name")
	addCmd.Flags().StringVar(&addDocDesc, "desc", "", "document description")
}
