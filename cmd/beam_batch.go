package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/report"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/SiliconWit/mechanics-of-materials/internal/xlsxio"
	"github.com/spf13/cobra"
)

var (
	batchInput    string
	batchOutput   string
	batchTemplate bool
	batchPDF      string
)

var beamBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a workbook of beams and write the results",
	Long: `Read one beam case per row from an XLSX workbook, analyze each, and
write a results workbook with reactions, force extrema, stress, and
safety per row. Rows that fail to analyze are reported and skipped.

Cell grammars:
  supports           "0:pinned; 3000:roller"  or  "0:fixed"
  point_loads        "1500:5000; 4000:3000"   (position:magnitude)
  distributed_loads  "0-4000:0.8"             (start-end:intensity)
  section            "rect 80x120", "hollow 60x40x4", "circle 40",
                     "tube 50x4", "tube 16/12", "given 8.2e6:75",
                     optional override "... @ I:c"

Examples:
  # Write a starter workbook, fill it in, then run it
  beamcalc beam batch --input beams.xlsx --template
  beamcalc beam batch --input beams.xlsx --output results.xlsx

  # Also render the whole batch as a PDF report
  beamcalc beam batch -i beams.xlsx -o results.xlsx --pdf batch.pdf`,
	Run: runBeamBatch,
}

func init() {
	beamCmd.AddCommand(beamBatchCmd)

	beamBatchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook path [required]")
	beamBatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "beam_results.xlsx", "Results workbook path")
	beamBatchCmd.Flags().BoolVar(&batchTemplate, "template", false, "Write a starter workbook to --input and exit")
	beamBatchCmd.Flags().StringVar(&batchPDF, "pdf", "", "Also render the batch as a PDF report")

	beamBatchCmd.MarkFlagRequired("input")
}

func runBeamBatch(cmd *cobra.Command, args []string) {
	if batchTemplate {
		if err := xlsxio.WriteTemplate(batchInput); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Template written to: %s\n", batchInput)
		fmt.Println("  Fill in one beam per row, then rerun without --template.")
		return
	}

	cases, err := xlsxio.ReadScenarios(batchInput)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BATCH BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	var results []*scenario.Result
	failed := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tConfiguration\t|M| max\tSF\tAssessment\n")
	fmt.Fprintf(w, "  ──\t─────────────\t───────\t──\t──────────\n")
	for _, s := range cases {
		res, err := s.Analyze()
		if err != nil {
			fmt.Fprintf(w, "  %s\t⚠ %v\n", s.ID, err)
			failed++
			continue
		}
		results = append(results, res)
		fmt.Fprintf(w, "  %s\t%s\t%.6g N·mm\t%.4g\t%s\n",
			s.ID, res.Analysis.Config(), res.Extremes.MaxAbsMoment(),
			res.GoverningSF(), batchAssessment(res))
	}
	w.Flush()
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("Error: no beams analyzed")
		return
	}

	if err := xlsxio.WriteResults(batchOutput, results); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("  Results written to: %s (%d of %d beams", batchOutput, len(results), len(cases))
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println(")")

	if batchPDF != "" {
		if err := report.Write(batchPDF, results...); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("  Report written to: %s\n", batchPDF)
		}
	}
	fmt.Println()
}

func batchAssessment(r *scenario.Result) string {
	if r.Combined != nil {
		return r.Combined.Assessment
	}
	return r.Flexure.Assessment
}
