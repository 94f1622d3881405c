package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sonro/linurgy/internal/rulefile"
)

var rulesOutputFlag string

var rulesCmd = &cobra.Command{
	Use:   "rules <rulebook.yaml> [file]",
	Short: "Apply every edit rule from a YAML rulebook, in order",
	Long: `rules loads a YAML rulebook and applies its edits as a pipeline: the
output of each rule becomes the input of the next. A rulebook looks like:

    rules:
      - name: collapse blank lines
        mode: replace
        text: "\n"
        trigger: 2
      - mode: append
        text: "---"
        trigger: 1

With no file argument, input is read from stdin.`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := rulefile.Load(args[0])
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		output := input
		for i, rule := range book.Rules {
			ed, err := rule.Editor()
			if err != nil {
				return fmt.Errorf("rule %d: %w", i+1, err)
			}
			output = ed.Edit(output)
		}

		return writeOutput(output)
	},
}

var rulesListCmd = &cobra.Command{
	Use:          "list <rulebook.yaml>",
	Short:        "Show the rules in a rulebook",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := rulefile.Load(args[0])
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"#", "Name", "Mode", "Trigger", "Newline", "Text"})
		for i, rule := range book.Rules {
			newline := "lf"
			if rule.CRLF {
				newline = "crlf"
			}
			tw.AppendRow(table.Row{i + 1, rule.Name, rule.Mode, rule.Trigger, newline, fmt.Sprintf("%q", rule.Text)})
		}
		tw.Render()

		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("failed to read input %s: %w", args[1], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(output string) error {
	if rulesOutputFlag == "" {
		_, err := io.WriteString(os.Stdout, output)
		return err
	}
	if err := os.WriteFile(rulesOutputFlag, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", rulesOutputFlag, err)
	}
	return nil
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOutputFlag, "output", "o", "", "write the result to a file instead of stdout")
	rulesCmd.AddCommand(rulesListCmd)
	rootCmd.AddCommand(rulesCmd)
}
