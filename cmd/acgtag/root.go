package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "acgtag <input> <output>",
	Short: "Translate a tree-adjoining grammar into an abstract categorial grammar",
	Long: `acgtag reads a TAG description and emits an ACG encoding of it:
- a derivation-trees signature typing every elementary tree by its
  substitution and adjunction sites,
- a derived-trees signature and a string signature,
- lexicons mapping derivations to derived trees and derived trees to
  their string yields.`,
	Example:       `  acgtag grammar.tag grammar.acg`,
	Args:          cobra.ExactArgs(2),
	RunE:          runGenerate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
