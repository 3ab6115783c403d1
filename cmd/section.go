package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section property calculation",
	Long: `Compute the properties a bending or torsion check needs: area,
moment of inertia, extreme fiber distance, section modulus, and the
polar moment for circular shapes.

Shapes: solid rectangle, hollow rectangle, solid circle, circular tube,
an arbitrary polygon from a file, or stated properties.

Subcommands:
  analyze  - Compute the properties of one section

Example JSON file structure:
{
  "kind": "polygon",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 60, "y": 0},
    {"x": 60, "y": 40},
    {"x": 0, "y": 40}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
