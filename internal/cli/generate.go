package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/truemindlabs-dev/synora/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		style   string
		width   int
		height  int
		seed    int64
		hasSeed bool
		out     string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate a transparent PNG from a text prompt",
		Long: `Generate an image from a text prompt and write it as a PNG file.

The prompt is analyzed for palette and style cues; pass --style to force a
specific renderer. The same prompt, style, dimensions and seed always
produce the same image.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			hasSeed = cmd.Flags().Changed("seed")

			opts := pipeline.Options{
				Prompt:  prompt,
				Style:   style,
				Width:   width,
				Height:  height,
				Refresh: refresh,
				Logger:  c.Logger,
			}
			if hasSeed {
				opts.Seed = &seed
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Generating...")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Generation failed")
				return err
			}
			spinner.Stop()

			path := out
			if path == "" {
				path = defaultOutputName(prompt)
			}
			if err := os.WriteFile(path, result.PNG, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Generated %s image", result.StyleUsed)
			printFile(path)
			printRenderStats(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "rendering style (default: detect from prompt)")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "image width in pixels (256-1024)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "image height in pixels (256-1024)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible variation")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: derived from prompt)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache entirely")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even if a cached render exists")

	return cmd
}

// defaultOutputName derives a filesystem-friendly PNG name from the prompt.
func defaultOutputName(prompt string) string {
	name := strings.ToLower(prompt)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	name = strings.Trim(name, "-")
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		name = "synora"
	}
	return filepath.Clean(name + ".png")
}
