package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/spf13/cobra"
)

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in beam scenarios",
	Run:   runScenarioList,
}

func init() {
	scenarioCmd.AddCommand(scenarioListCmd)
}

func runScenarioList(cmd *cobra.Command, args []string) {
	cases := scenario.Builtin()

	fmt.Println()
	fmt.Println("BUILT-IN SCENARIOS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tTitle\tConfiguration\tSpan\tMaterial\tReq. SF\n")
	fmt.Fprintf(w, "  ──\t─────\t─────────────\t────\t────────\t───────\n")
	for _, s := range cases {
		config := "?"
		if a, err := s.Build().Analyze(); err == nil {
			config = a.Config().String()
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%g mm\t%s\t%g\n",
			s.ID, s.Title, config, s.Beam.Length, s.Material.Name, s.RequiredSF)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d scenarios. Analyze one with 'beamcalc beam analyze --scenario <id>'.\n", len(cases))
	fmt.Println()
}
