package cmd

import (
	"fmt"

	"github.com/caseloom/caseloom-cli/internal/extractor"
	"github.com/caseloom/caseloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var extractOutputPath string

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract plain text from a PDF, DOCX, or TXT document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := checkFileSize(path); err != nil {
			return err
		}
		text, err := extractor.Extract(path)
		if err != nil {
			return err
		}
		if extractOutputPath != "" {
			if err := utils.SafeWriteFile(extractOutputPath, []byte(text)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote extracted text to %s\n", extractOutputPath)
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutputPath, "output", "o", "", "write extracted text to file instead of stdout")
}
