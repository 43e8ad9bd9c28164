package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khang200923/simple-propositional-logic/internal/logic"
)

// axiomsCmd: spl axioms
var axiomsCmd = &cobra.Command{
	Use:   "axioms",
	Short: "Print the axiom schemas",
	Run: func(cmd *cobra.Command, args []string) {
		for i := 0; i < logic.AxiomCount; i++ {
			fmt.Printf("%d: %s\n", i, logic.Axiom(i))
		}
	},
}
