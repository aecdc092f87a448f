package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resumetex/internal/convert"
	"github.com/pdiddy/resumetex/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>...",
	Short: "Convert resume files to LaTeX",
	Long: `Convert reads one or more PDF or Word resumes, infers their structure,
and writes a .tex file next to each input (the extension is swapped for
.tex). With a single input, -o selects a different output path.

Multiple inputs run as a batch: inputs whose output already exists are
skipped unless --force is set, and a summary is printed at the end.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		typeFlag, _ := cmd.Flags().GetString("type")
		force, _ := cmd.Flags().GetBool("force")

		cfg := convertConfig()
		format, err := parseTypeFlag(typeFlag)
		if err != nil {
			return err
		}
		cfg.Format = format

		if output != "" {
			if len(args) != 1 {
				return fmt.Errorf("-o/--output requires exactly one input file")
			}
			if err := convert.ConvertAndSave(args[0], output, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s\n", args[0], output)
			return nil
		}

		if len(args) == 1 {
			outPath := convert.OutputPath(args[0])
			if err := convert.ConvertAndSave(args[0], outPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s\n", args[0], outPath)
			return nil
		}

		result := convert.ConvertBatch(args, cfg, force, cmd.OutOrStdout())
		if result.HasFailures() {
			return fmt.Errorf("%d of %d conversions failed", result.Failed, result.Total())
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output .tex path (single input only)")
	convertCmd.Flags().String("type", "", "input type: pdf or docx (default: detect from extension)")
	convertCmd.Flags().Bool("force", false, "overwrite existing outputs in batch mode")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig assembles the conversion settings from viper (flags > env >
// config file > defaults).
func convertConfig() types.ConvertConfig {
	return types.ConvertConfig{
		MaxFileSize: viper.GetInt64("max_file_size"),
		Render: types.RenderConfig{
			FontSize: viper.GetString("render.font_size"),
			Paper:    viper.GetString("render.paper"),
			Margin:   viper.GetString("render.margin"),
		},
	}
}

// parseTypeFlag maps the --type flag to a format; empty means detect from
// the file extension.
func parseTypeFlag(v string) (types.Format, error) {
	switch strings.ToLower(v) {
	case "":
		return "", nil
	case "pdf":
		return types.FormatPDF, nil
	case "docx", "doc", "word":
		return types.FormatDocx, nil
	default:
		return "", fmt.Errorf("unknown input type %q (use pdf or docx)", v)
	}
}
