// Package main is the entry point for the resumetex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the resumetex CLI.
var rootCmd = &cobra.Command{
	Use:   "resumetex",
	Short: "Convert PDF and Word resumes to LaTeX",
	Long: `resumetex reconstructs the structure of an existing resume (the name,
contact block, section headings, bullet lists, and body paragraphs) from the
text of a PDF or Word file, and emits a LaTeX document with that structure.

Extraction is format specific; classification and rendering are shared. Both
input formats produce the same ordered fragment stream, and a single set of
heuristics labels it, using whichever formatting signals the source could
provide (font sizes for PDF, styles and boldness for Word).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resumetex.yaml or ~/.config/resumetex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resumetex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resumetex"))
		}
	}

	viper.SetEnvPrefix("RESUMETEX")
	viper.AutomaticEnv()

	viper.SetDefault("max_file_size", 50*1024*1024)
	viper.SetDefault("render.font_size", "11pt")
	viper.SetDefault("render.paper", "a4paper")
	viper.SetDefault("render.margin", "1in")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
