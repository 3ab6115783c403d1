package cmd

import (
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Browse and verify the built-in beam scenarios",
	Long: `The built-in scenario library covers the beams of a family of
mechatronic case studies: conveyor frames, crane jibs, camera booms,
pantograph links, robotic arms, solar trackers, gantry rails, and drone
booms. Each scenario carries its loading, cross-section, material, and
the published figures its analysis should reproduce.

Subcommands:
  list    - Table of the built-in scenarios
  verify  - Check analysis results against the published figures`,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}
