package cmd

import (
	"fmt"
	"strings"

	"github.com/SiliconWit/mechanics-of-materials/internal/chartdata"
	"github.com/spf13/cobra"
)

var (
	chartScenario string
	chartFile     string
	chartOutDir   string
	chartUnits    string
	chartPoints   int
)

var beamChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export shear and moment chart data as JSON",
	Long: `Analyze a beam case and write its shear force and bending moment
charts as JSON documents, ready for a plotting frontend.

The shear chart carries straight segments between the load stations; the
moment chart carries a dense curve. Both carry critical point markers and
support/load indicators.

Examples:
  beamcalc beam chart --scenario conveyor_frame --out-dir charts/
  beamcalc beam chart --scenario crane_jib --units m
  beamcalc beam chart --file my-beam.json --points 400`,
	Run: runBeamChart,
}

func init() {
	beamCmd.AddCommand(beamChartCmd)

	beamChartCmd.Flags().StringVarP(&chartScenario, "scenario", "s", "", "Built-in scenario id (see 'beamcalc scenario list')")
	beamChartCmd.Flags().StringVarP(&chartFile, "file", "f", "", "Path to a beam case JSON/YAML file")
	beamChartCmd.Flags().StringVarP(&chartOutDir, "out-dir", "d", ".", "Directory for the chart files")
	beamChartCmd.Flags().StringVarP(&chartUnits, "units", "u", "mm", "Axis units: mm or m")
	beamChartCmd.Flags().IntVar(&chartPoints, "points", 0, "Stations on the moment curve (0 = default)")
}

func runBeamChart(cmd *cobra.Command, args []string) {
	s, err := loadScenario(chartScenario, chartFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	res, err := s.Analyze()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	g := chartdata.New(res.Analysis, s.Title)
	switch strings.ToLower(chartUnits) {
	case "mm", "":
		g.Units = chartdata.Millimeters
	case "m":
		g.Units = chartdata.Meters
	default:
		fmt.Printf("Error: unknown units %q, want mm or m\n", chartUnits)
		return
	}
	if chartPoints > 0 {
		g.CurveN = chartPoints
	}

	paths, err := g.WriteFiles(chartOutDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, p := range paths {
		fmt.Printf("  Chart data written to: %s\n", p)
	}
}
