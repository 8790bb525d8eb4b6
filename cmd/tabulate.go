package cmd

import (
	"fmt"
	"os"

	"github.com/caseloom/caseloom-cli/internal/export"
	"github.com/caseloom/caseloom-cli/internal/extractor"
	"github.com/caseloom/caseloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	tabOutputPath string
	tabSheetName  string
	tabStrict     bool
)

var tabulateCmd = &cobra.Command{
	Use:   "tabulate <files...>",
	Short: "Extract several documents into a one-column workbook",
	Long: `Tabulate extracts each input document and writes a workbook with one
"Contenu" row per document. Files that fail extraction are reported and
skipped unless --strict is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var texts []string
		for _, path := range args {
			if err := checkFileSize(path); err != nil {
				if tabStrict {
					return err
				}
				fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
				continue
			}
			text, err := extractor.Extract(path)
			if err != nil {
				if tabStrict {
					return err
				}
				fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
				continue
			}
			texts = append(texts, text)
		}
		if len(texts) == 0 {
			return fmt.Errorf("no documents could be extracted")
		}

		sheet := tabSheetName
		if sheet == "" {
			sheet = contentSheetName()
		}
		buf, err := export.WriteContents(texts, sheet)
		if err != nil {
			return err
		}

		out := tabOutputPath
		if out == "" {
			out = "contenu.xlsx"
		}
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Printf("✓ Tabulated %d documents to %s\n", len(texts), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tabulateCmd)
	tabulateCmd.Flags().StringVarP(&tabOutputPath, "output", "o", "", "output workbook path (default: contenu.xlsx)")
	tabulateCmd.Flags().StringVar(&tabSheetName, "sheet", "", "sheet name (default from config)")
	tabulateCmd.Flags().BoolVar(&tabStrict, "strict", false, "fail on the first unreadable document")
}
