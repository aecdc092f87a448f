package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resumetex/internal/convert"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <input>",
	Short: "Print the classified block structure without rendering",
	Long: `Blocks runs extraction and structure classification on a resume and
prints the resulting block sequence as YAML. Useful for checking how the
heuristics read a document before generating LaTeX.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")

		cfg := convertConfig()
		format, err := parseTypeFlag(typeFlag)
		if err != nil {
			return err
		}
		cfg.Format = format

		doc, err := convert.ClassifyFile(args[0], cfg)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding blocks: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	blocksCmd.Flags().String("type", "", "input type: pdf or docx (default: detect from extension)")

	rootCmd.AddCommand(blocksCmd)
}
