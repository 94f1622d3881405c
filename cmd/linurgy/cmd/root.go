package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sonro/linurgy/pkg/editor"
)

var (
	triggerFlag uint8
	textFlag    string
	modeFlag    string
	crlfFlag    bool
	outputFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linurgy [file]",
	Short: "Rewrite runs of consecutive newlines in text",
	Long: `linurgy scans text for runs of consecutive newlines and, each time a run
reaches the trigger count, splices in replacement text: after the newlines
(append), before them (insert), or instead of them (replace).

With no file argument, input is read from stdin. Without --output, the
result is written to stdout. Input is streamed line by line, so it is safe
to run over large files or to watch endless streams such as logs.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		editType, err := editor.ParseEditType(modeFlag)
		if err != nil {
			return err
		}

		newline := editor.LF
		if crlfFlag {
			newline = editor.CRLF
		}

		b := editor.NewBuilder().
			Text(textFlag).
			Trigger(triggerFlag).
			EditType(editType).
			Newline(newline)
		if len(args) == 1 {
			b.FromFile(args[0])
		}
		if outputFlag != "" {
			b.ToFile(outputFlag)
		}

		return b.Run()
	},
}

func init() {
	rootCmd.Flags().Uint8VarP(&triggerFlag, "trigger", "n", 2, "newline run length that fires an edit (0 disables editing)")
	rootCmd.Flags().StringVarP(&textFlag, "text", "t", "-------\n", "text spliced in when the trigger fires")
	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "append", "where the text goes: append, insert or replace")
	rootCmd.Flags().BoolVar(&crlfFlag, "crlf", false, "treat \\r\\n as one newline unit")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the result to a file instead of stdout")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
