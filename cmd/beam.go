package cmd

import (
	"fmt"

	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Analyze determinate beams: reactions, diagrams, stress, safety",
	Long: `Analyze statically determinate beams under point and distributed loads.

Supported configurations:
  - Two vertical supports (simply supported or overhanging)
  - Cantilever (fixed at one end)
  - Pin plus spring link

Subcommands:
  analyze  - Full analysis of one beam case
  chart    - Export shear and moment chart data as JSON
  report   - Render a PDF calculation report
  sweep    - Move a concentrated load along the span
  batch    - Analyze a workbook of beams and write the results

Beam cases come from the built-in scenario library (--scenario) or from a
JSON/YAML definition file (--file).`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

// loadScenario resolves the beam case named by the flags: a built-in
// scenario id or a definition file, never both
func loadScenario(name, file string) (*scenario.Scenario, error) {
	switch {
	case name != "" && file != "":
		return nil, fmt.Errorf("use either --scenario or --file, not both")
	case name != "":
		return scenario.ByID(name)
	case file != "":
		return scenario.Load(file)
	}
	return nil, fmt.Errorf("name a beam case with --scenario <id> or --file <path>")
}
