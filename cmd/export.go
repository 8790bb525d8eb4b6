package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caseloom/caseloom-cli/internal/export"
	"github.com/caseloom/caseloom-cli/internal/extractor"
	"github.com/caseloom/caseloom-cli/internal/suite"
	"github.com/caseloom/caseloom-cli/internal/testcase"
	"github.com/caseloom/caseloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	exportOutputPath string
	exportSheetName  string
	exportSuiteName  string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Parse test-case blocks and export them as an XLSX workbook",
	Long: `Export splits its input into test-case blocks (separated by "---" lines),
parses the "### Titre / Préconditions / Données d'entrée / Étapes / Résultat attendu"
sections of each block, and writes one styled workbook row per case.

The input is either a document file (any supported extraction format) or,
with --suite, every document previously added to a suite.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var blocks []string
		switch {
		case exportSuiteName != "":
			if len(args) > 0 {
				return fmt.Errorf("pass either a file or --suite, not both")
			}
			dir, err := resolveSuiteDirByName(exportSuiteName)
			if err != nil {
				return err
			}
			s, err := suite.Load(dir)
			if err != nil {
				return err
			}
			for _, d := range s.SortedDocuments() {
				blocks = append(blocks, testcase.SplitBlocks(d.Text)...)
			}
		case len(args) == 1:
			path := args[0]
			if err := checkFileSize(path); err != nil {
				return err
			}
			text, err := extractor.Extract(path)
			if err != nil {
				return err
			}
			blocks = testcase.SplitBlocks(text)
		default:
			return fmt.Errorf("a file argument or --suite is required")
		}

		records := testcase.ParseAll(blocks)
		if len(records) == 0 {
			return fmt.Errorf("no test case blocks found in input")
		}

		sheet := exportSheetName
		if sheet == "" {
			sheet = caseSheetName()
		}
		buf, err := export.WriteTestCases(records, sheet)
		if err != nil {
			return err
		}

		out := exportOutputPath
		if out == "" {
			if len(args) == 1 {
				base := filepath.Base(args[0])
				out = strings.TrimSuffix(base, filepath.Ext(base)) + ".xlsx"
			} else {
				out = exportSuiteName + ".xlsx"
			}
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Printf("✓ Exported %d test cases to %s\n", len(records), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output workbook path (default: input name with .xlsx)")
	exportCmd.Flags().StringVar(&exportSheetName, "sheet", "", "sheet name (default from config)")
	exportCmd.Flags().StringVarP(&exportSuiteName, "suite", "s", "", "export every document of a suite")
}
