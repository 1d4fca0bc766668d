package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/truemindlabs-dev/synora/pkg/engine"
)

// stylesCommand creates the styles command.
func (c *CLI) stylesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available rendering styles",
		Long: `List every rendering style together with the prompt keywords that
trigger it in auto mode. With --interactive, pick a style from a list and
get a ready-to-run generate command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runStylePicker()
			}

			fmt.Println(StyleTitle.Render("Rendering Styles"))
			printNewline()
			for _, s := range engine.Styles() {
				if s == engine.StyleAuto {
					printKeyValue(string(s), "detect the style from the prompt")
					continue
				}
				kw := engine.Keywords(s)
				if len(kw) == 0 {
					printKeyValue(string(s), StyleDim.Render("fallback style"))
					continue
				}
				printKeyValue(string(s), strings.Join(kw, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a style from an interactive list")
	return cmd
}

func runStylePicker() error {
	model := NewStyleListModel()
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run style picker: %w", err)
	}

	picked, ok := final.(StyleListModel)
	if !ok || picked.Selected == "" {
		printInfo("No style selected")
		return nil
	}

	printSuccess("Selected %s", picked.Selected)
	printNextStep("Try it", fmt.Sprintf("synora generate \"your prompt\" --style %s", picked.Selected))
	return nil
}
