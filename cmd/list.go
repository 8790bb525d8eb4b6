package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caseloom/caseloom-cli/internal/suite"
	"github.com/spf13/cobra"
)

var (
	listSuites    bool
	listDocs      bool
	listSuiteName string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List suites or documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listSuites == listDocs { // either both true or both false
			return fmt.Errorf("specify exactly one of --suites or --docs")
		}
		if listSuites {
			return listAllSuites()
		}
		// list docs
		if listSuiteName == "" {
			return fmt.Errorf("--suite is required when using --docs")
		}
		suiteDir, err := resolveSuiteDirByName(listSuiteName)
		if err != nil {
			return err
		}
		s, err := suite.Load(suiteDir)
		if err != nil {
			return err
		}
		if len(s.Documents) == 0 {
			fmt.Println("(no documents)")
			return nil
		}
		for _, d := range s.SortedDocuments() {
			fmt.Printf("- %s: %s (%s)\n", d.ID, d.Name, d.Description)
		}
		return nil
	},
}

func listAllSuites() error {
	root, err := defaultSuitesDir()
	if err != nil {
		return err
	}
	dirs, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	found := false
	for _, e := range dirs {
		if !e.IsDir() {
			continue
		}
		sj := filepath.Join(root, e.Name(), "suite.json")
		if _, err := os.Stat(sj); err == nil {
			fmt.Printf("- %s\n", e.Name())
			found = true
		}
	}
	if !found {
		fmt.Println("(no suites)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listSuites, "suites", false, "list suites")
	listCmd.Flags().BoolVar(&listDocs, "docs", false, "list documents in a suite")
	listCmd.Flags().StringVarP(&listSuiteName, "suite", "s", "", "suite name for --docs")
}
