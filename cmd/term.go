package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
)

// termCmd: spl term '>a>ba'
var termCmd = &cobra.Command{
	Use:   "term <formula>",
	Short: "Parse a prefix formula and print its rendered form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		term, err := logic.ParseTerm(args[0])
		if err != nil {
			logger.Error("Failed to parse formula", zap.String("formula", args[0]), zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(term)
	},
}
