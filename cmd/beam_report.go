package cmd

import (
	"fmt"

	"github.com/SiliconWit/mechanics-of-materials/internal/report"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	reportScenario string
	reportFile     string
	reportAll      bool
	reportOutput   string
)

var beamReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a PDF calculation report",
	Long: `Analyze one beam case, or the whole built-in scenario library, and
render the results as a PDF calculation report: loading, reactions,
internal force extremes, stress, safety, and verification against any
published figures.

Examples:
  beamcalc beam report --scenario pantograph_arm
  beamcalc beam report --file my-beam.yaml --output my-beam.pdf
  beamcalc beam report --all --output casebook.pdf`,
	Run: runBeamReport,
}

func init() {
	beamCmd.AddCommand(beamReportCmd)

	beamReportCmd.Flags().StringVarP(&reportScenario, "scenario", "s", "", "Built-in scenario id (see 'beamcalc scenario list')")
	beamReportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to a beam case JSON/YAML file")
	beamReportCmd.Flags().BoolVarP(&reportAll, "all", "a", false, "Report every built-in scenario")
	beamReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "beam_report.pdf", "Output PDF path")
}

func runBeamReport(cmd *cobra.Command, args []string) {
	var cases []*scenario.Scenario
	if reportAll {
		if reportScenario != "" || reportFile != "" {
			fmt.Println("Error: --all replaces --scenario and --file")
			return
		}
		cases = scenario.Builtin()
	} else {
		s, err := loadScenario(reportScenario, reportFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		cases = []*scenario.Scenario{s}
	}

	var results []*scenario.Result
	for _, s := range cases {
		res, err := s.Analyze()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		results = append(results, res)
	}

	if err := report.Write(reportOutput, results...); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("  Report written to: %s (%d case", reportOutput, len(results))
	if len(results) != 1 {
		fmt.Print("s")
	}
	fmt.Println(")")
}
