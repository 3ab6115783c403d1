package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/diagram"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/spf13/cobra"
)

var scenarioVerifyCmd = &cobra.Command{
	Use:   "verify [scenario]",
	Short: "Check analysis results against the published figures",
	Long: `Analyze the named scenario, or every built-in scenario, and compare
the results against the published figures each carries: reactions,
spring force, fixing moment, peak moment, peak stress, safety factor.

Examples:
  beamcalc scenario verify
  beamcalc scenario verify pantograph_arm`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScenarioVerify,
}

func init() {
	scenarioCmd.AddCommand(scenarioVerifyCmd)
}

func runScenarioVerify(cmd *cobra.Command, args []string) {
	cases := scenario.Builtin()
	if len(args) == 1 {
		s, err := scenario.ByID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		cases = []*scenario.Scenario{s}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SCENARIO VERIFICATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	passed, flagged := 0, 0
	for _, s := range cases {
		v, err := s.Verify()
		if err != nil {
			fmt.Printf("\n  ⚠ %s: %v\n", s.ID, err)
			flagged++
			continue
		}

		status := "✓"
		if !v.AllMatch {
			status = "⚠"
		}
		fmt.Printf("\n  %s %s (%s)\n", status, v.Title, v.ScenarioID)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range v.Checks {
			mark := "✓"
			if !c.Match {
				mark = "⚠"
			}
			fmt.Fprintf(w, "      %s %s:\texpected %.6g, got %.6g\n", mark, c.Name, c.Expected, c.Actual)
		}
		w.Flush()
		for _, note := range v.Notes {
			fmt.Printf("      note: %s\n", note)
		}

		if v.AllMatch {
			passed++
		} else {
			flagged++
		}
	}
	fmt.Println()

	lines := []string{
		fmt.Sprintf("%d of %d scenarios verified", passed, len(cases)),
	}
	if flagged > 0 {
		lines = append(lines, fmt.Sprintf("%d flagged for review", flagged))
	}
	fmt.Println(diagram.DrawSummaryBox("VERIFICATION SUMMARY", lines))
}
