package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/diagram"
	"github.com/SiliconWit/mechanics-of-materials/internal/sweep"
	"github.com/SiliconWit/mechanics-of-materials/internal/xlsxio"
	"github.com/spf13/cobra"
)

var (
	sweepScenario string
	sweepFile     string
	sweepLoad     int
	sweepFrom     float64
	sweepTo       float64
	sweepPoints   int
	sweepXLSX     string
	sweepImage    string
)

var beamSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Move a concentrated load along the span",
	Long: `Park one concentrated load of a beam case at a series of positions
and analyze each station in full: reactions, governing moment, stress,
and safety factor. Reports the governing position.

Examples:
  # Trolley travelling the full rail
  beamcalc beam sweep --scenario gantry_rail

  # Hoist load of the crane jib between the supports, 25 stations
  beamcalc beam sweep --scenario crane_jib --load 0 --from 0 --to 3000 --points 25

  # Save the travel table and a plot
  beamcalc beam sweep -s gantry_rail --xlsx travel.xlsx -o travel.png`,
	Run: runBeamSweep,
}

func init() {
	beamCmd.AddCommand(beamSweepCmd)

	beamSweepCmd.Flags().StringVarP(&sweepScenario, "scenario", "s", "", "Built-in scenario id (see 'beamcalc scenario list')")
	beamSweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "Path to a beam case JSON/YAML file")
	beamSweepCmd.Flags().IntVarP(&sweepLoad, "load", "l", 0, "Index of the point load that travels")
	beamSweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "Travel range start (mm)")
	beamSweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Travel range end (mm, 0 = full span)")
	beamSweepCmd.Flags().IntVarP(&sweepPoints, "points", "n", 0, "Travel stations (0 = default)")
	beamSweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "Write the travel table to a workbook")
	beamSweepCmd.Flags().StringVarP(&sweepImage, "output", "o", "", "Export the travel plot (png, svg, pdf)")
}

func runBeamSweep(cmd *cobra.Command, args []string) {
	s, err := loadScenario(sweepScenario, sweepFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := sweep.Run(&sweep.Config{
		Scenario: s,
		Index:    sweepLoad,
		Start:    sweepFrom,
		End:      sweepTo,
		Steps:    sweepPoints,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	load := s.Beam.PointLoads[sweepLoad]
	first := res.Stations[0]
	last := res.Stations[len(res.Stations)-1]

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MOVING LOAD STUDY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Scenario:\t%s\n", s.Title)
	fmt.Fprintf(w, "  Travelling load:\t%g N (index %d)\n", load.Magnitude, sweepLoad)
	fmt.Fprintf(w, "  Travel range:\t%g to %g mm\n", first.Position, last.Position)
	fmt.Fprintf(w, "  Stations:\t%d\n", len(res.Stations))
	w.Flush()
	fmt.Println()

	fmt.Println("TRAVEL TABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Position\t|V| max\t|M| max\tat\tσ\tSF\n")
	fmt.Fprintf(w, "  ────────\t───────\t───────\t──\t─\t──\n")
	for _, st := range res.Stations {
		marker := ""
		if st.Position == res.Worst.Position {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %g mm\t%.6g N\t%.6g N·mm\t%g mm\t%.4g MPa\t%.4g%s\n",
			st.Position, st.MaxAbsShear, st.MaxAbsMoment, st.MomentAt, st.Stress, st.SafetyFactor, marker)
	}
	w.Flush()
	fmt.Println()

	moments := res.Moments()
	for i := range moments {
		moments[i] /= 1000
	}
	fmt.Println(diagram.DrawSeriesGraph(moments,
		fmt.Sprintf("governing |M| (N·m), load from %g to %g mm", first.Position, last.Position)))
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Load at %g mm governs", res.Worst.Position),
		fmt.Sprintf("Max |M| = %.6g N·mm at %g mm", res.Worst.MaxAbsMoment, res.Worst.MomentAt),
		fmt.Sprintf("σ_max  = %.4g MPa", res.Worst.Stress),
		fmt.Sprintf("Min SF = %.4g over the travel", res.MinSafetyFactor()),
	}
	fmt.Println(diagram.DrawSummaryBox("TRAVEL SUMMARY", lines))

	if sweepXLSX != "" {
		if err := xlsxio.WriteSweep(sweepXLSX, res); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Travel table written to: %s\n", sweepXLSX)
		}
	}
	if sweepImage != "" {
		err := diagram.ExportSeriesDiagram(res.Positions(), res.Moments(),
			fmt.Sprintf("Moving Load Study: %s", s.Title),
			"Load position (mm)", "Governing |M| (N·mm)", sweepImage)
		if err != nil {
			fmt.Printf("Error exporting plot: %v\n", err)
		} else {
			fmt.Printf("  Travel plot written to: %s\n", sweepImage)
		}
	}
	if sweepXLSX != "" || sweepImage != "" {
		fmt.Println()
	}
}
