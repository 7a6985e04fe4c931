// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/ai"
	"github.com/thatcatcamp/windpalette/internal/color"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/kv"
	"github.com/thatcatcamp/windpalette/internal/preview"
	"github.com/thatcatcamp/windpalette/internal/themes"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Work with colors and themes from the terminal",
}

var (
	positionFlag string
	harmonyFlag  string
	formatAsFlag string
	exportFormat string
	randomCount  int
	randomSeed   uint64
	randomPrefs  themes.Preferences
	previewOut   string
	previewW     int
	previewH     int
)

var paletteScaleCmd = &cobra.Command{
	Use:   "scale <hex>",
	Short: "Print the 50-950 scale for a color",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		position, err := color.ParseBasePosition(positionFlag)
		if err != nil {
			fatal("%v", err)
		}

		scale, err := color.GenerateScale(args[0], position)
		if err != nil {
			fatal("%v", err)
		}

		for _, shade := range color.Shades {
			fmt.Printf("%4d  %s\n", shade, scale[shade])
		}
	},
}

var paletteStatusCmd = &cobra.Command{
	Use:   "status <primary> <secondary> <accent>",
	Short: "Print the status colors derived from a brand triad",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		status, err := color.GenerateStatusColors(args[0], args[1], args[2])
		if err != nil {
			fatal("%v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tBASE\tLIGHT\tDARK")
		shades := status.Map()
		for _, name := range color.StatusNames {
			s := shades[name]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, s.Base, s.Light, s.Dark)
		}
		w.Flush()
	},
}

var paletteHarmoniesCmd = &cobra.Command{
	Use:   "harmonies <hex>",
	Short: "Print a color harmony",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		harmony, err := color.ParseHarmony(harmonyFlag)
		if err != nil {
			fatal("%v", err)
		}

		colors, err := color.GenerateHarmonies(args[0], harmony)
		if err != nil {
			fatal("%v", err)
		}

		for _, c := range colors {
			fmt.Println(c)
		}
	},
}

var paletteRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Compose a random theme from preferences",
	Run: func(cmd *cobra.Command, args []string) {
		generator := themes.NewGenerator()
		if cmd.Flags().Changed("seed") {
			generator = themes.NewSeededGenerator(randomSeed)
		}

		comp, err := generator.Compose(randomCount, randomPrefs.WithDefaults())
		if err != nil {
			fatal("%v", err)
		}

		fmt.Printf("harmony:   %s\n", comp.Harmony)
		if comp.Preset != "" {
			fmt.Printf("preset:    %s\n", comp.Preset)
		}
		fmt.Printf("primary:   %s\n", comp.Colors.Primary)
		if comp.Colors.Secondary != "" {
			fmt.Printf("secondary: %s\n", comp.Colors.Secondary)
		}
		if comp.Colors.Accent != "" {
			fmt.Printf("accent:    %s\n", comp.Colors.Accent)
		}
	},
}

var paletteFormatCmd = &cobra.Command{
	Use:   "format <hex>",
	Short: "Print a color as hex, rgb() or hsl()",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := color.ParseFormat(formatAsFlag)
		if err != nil {
			fatal("%v", err)
		}

		value, err := color.FormatColor(args[0], format)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(value)
	},
}

var paletteExportCmd = &cobra.Command{
	Use:   "export <primary> [secondary] [accent]",
	Short: "Export a theme as CSS variables or a Tailwind config",
	Args:  cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		theme := themes.ThemeColors{Primary: args[0]}
		if len(args) > 1 {
			theme.Secondary = args[1]
		}
		if len(args) > 2 {
			theme.Accent = args[2]
		}

		position, err := color.ParseBasePosition(positionFlag)
		if err != nil {
			fatal("%v", err)
		}

		colors, err := themes.GenerateColors(theme, position)
		if err != nil {
			fatal("%v", err)
		}

		var out string
		switch exportFormat {
		case "css":
			out, err = themes.GenerateCSS(colors)
		case "tailwind":
			out, err = themes.GenerateTailwindConfig(colors)
		default:
			fatal("unknown export format %q (want css or tailwind)", exportFormat)
		}
		if err != nil {
			fatal("%v", err)
		}
		fmt.Print(out)
	},
}

var palettePreviewCmd = &cobra.Command{
	Use:   "preview <hex>...",
	Short: "Write a PNG with one swatch per color",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		img, err := preview.RenderSwatches(args, previewW, previewH)
		if err != nil {
			fatal("%v", err)
		}

		f, err := os.Create(previewOut)
		if err != nil {
			fatal("creating %s: %v", previewOut, err)
		}
		if err := preview.EncodePNG(f, img); err != nil {
			f.Close()
			fatal("writing %s: %v", previewOut, err)
		}
		if err := f.Close(); err != nil {
			fatal("writing %s: %v", previewOut, err)
		}
		fmt.Printf("Preview written to %s\n", previewOut)
	},
}

var paletteAICmd = &cobra.Command{
	Use:   "ai <prompt>",
	Short: "Ask the configured AI endpoint for a palette",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fatal("%v", err)
		}
		key := config.GetString("ai.api_key")
		if key == "" {
			fatal("ai.api_key is not set")
		}

		// one-shot lookup, nothing worth persisting
		svc := ai.NewService(newAIClient(key), kv.NewMemoryStore(), 0)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*config.GetDuration("ai.timeout")+time.Second)
		defer cancel()

		suggestion, err := svc.Suggest(ctx, strings.Join(args, " "))
		if err != nil {
			fatal("%v", err)
		}
		for _, c := range suggestion.Colors {
			fmt.Println(c)
		}
	},
}

func init() {
	paletteScaleCmd.Flags().StringVar(&positionFlag, "position", string(color.DefaultPosition), "base position 1, 3, 5, 7 or 9")
	paletteExportCmd.Flags().StringVar(&positionFlag, "position", string(color.DefaultPosition), "base position 1, 3, 5, 7 or 9")
	paletteExportCmd.Flags().StringVar(&exportFormat, "format", "css", "css or tailwind")
	paletteHarmoniesCmd.Flags().StringVar(&harmonyFlag, "type", string(color.Triadic), "monochromatic, complementary, analogous, splitComplementary or triadic")
	paletteFormatCmd.Flags().StringVar(&formatAsFlag, "as", "hex", "hex, rgb or hsl")

	defaults := themes.DefaultPreferences()
	flags := paletteRandomCmd.Flags()
	flags.IntVar(&randomCount, "count", themes.MaxColors, "number of colors (1-3)")
	flags.Uint64Var(&randomSeed, "seed", 0, "seed for a reproducible theme")
	flags.StringVar((*string)(&randomPrefs.BaseColor), "temperature", string(defaults.BaseColor), "warm, cool or neutral")
	flags.StringVar((*string)(&randomPrefs.Style), "style", string(defaults.Style), "natural, modern, vintage or bold")
	flags.StringVar((*string)(&randomPrefs.Mood), "mood", string(defaults.Mood), "calm, energetic, professional or playful")
	flags.StringVar((*string)(&randomPrefs.Contrast), "contrast", string(defaults.Contrast), "subtle, balanced or strong")
	flags.StringVar((*string)(&randomPrefs.ColorFamily), "family", string(defaults.ColorFamily), "all, red, orange, yellow, green, blue, purple or neutral")

	palettePreviewCmd.Flags().StringVarP(&previewOut, "out", "o", "palette.png", "output file")
	palettePreviewCmd.Flags().IntVar(&previewW, "width", 600, "image width in pixels")
	palettePreviewCmd.Flags().IntVar(&previewH, "height", 200, "image height in pixels")

	paletteCmd.AddCommand(paletteScaleCmd)
	paletteCmd.AddCommand(paletteStatusCmd)
	paletteCmd.AddCommand(paletteHarmoniesCmd)
	paletteCmd.AddCommand(paletteRandomCmd)
	paletteCmd.AddCommand(paletteFormatCmd)
	paletteCmd.AddCommand(paletteExportCmd)
	paletteCmd.AddCommand(palettePreviewCmd)
	paletteCmd.AddCommand(paletteAICmd)
	rootCmd.AddCommand(paletteCmd)
}
