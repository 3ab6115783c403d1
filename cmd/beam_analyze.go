package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/chartdata"
	"github.com/SiliconWit/mechanics-of-materials/internal/diagram"
	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/spf13/cobra"
)

var (
	// Case selection
	analyzeScenario string
	analyzeFile     string

	// Analysis options
	analyzeGrid int
	analyzeDuty string

	// Output options
	analyzeDiagram bool
	analyzeImage   string
	analyzeBundle  string
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis of one beam case",
	Long: `Solve the support reactions, evaluate the shear force and bending
moment diagrams, extract the critical points, and grade the bending
stress against the material strength.

Examples:
  # Analyze a built-in scenario
  beamcalc beam analyze --scenario crane_jib

  # Analyze a beam defined in a file, with terminal diagrams
  beamcalc beam analyze --file my-beam.yaml --diagram

  # Export the diagrams and the full result bundle
  beamcalc beam analyze -s drone_arm -o arm.png --json arm_bundle.json

  # Apply the load factors of a duty case to a bare beam definition
  beamcalc beam analyze --file hoist-beam.yaml --duty hoisting`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().StringVarP(&analyzeScenario, "scenario", "s", "", "Built-in scenario id (see 'beamcalc scenario list')")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a beam case JSON/YAML file")

	beamAnalyzeCmd.Flags().IntVar(&analyzeGrid, "grid", 0, "Scan stations for critical point extraction (0 = default)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeDuty, "duty", "", "Duty case supplying dynamic factor and required SF (static, conveyor, actuated, hoisting, impact)")

	beamAnalyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Show ASCII loading sketch and force graphs")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeImage, "output", "o", "", "Export shear and moment diagrams (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeBundle, "json", "", "Write the full analysis bundle to a JSON file")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	s, err := loadScenario(analyzeScenario, analyzeFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if analyzeDuty != "" {
		f, err := material.FactorsFor(analyzeDuty)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		// a duty case fills in what the beam definition leaves unset
		if s.DynamicFactor == 0 {
			s.DynamicFactor = f.DynamicFactor
		}
		if s.RequiredSF == 0 {
			s.RequiredSF = f.RequiredSF
		}
	}
	res, err := s.AnalyzeGrid(analyzeGrid)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b := res.Analysis.Beam()
	rs := res.Analysis.Reactions()
	ext := res.Extremes

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DETERMINATE BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if s.Title != "" {
		fmt.Printf("  Scenario: %s\n", s.Title)
	}
	if s.Description != "" {
		fmt.Printf("  %s\n", s.Description)
	}
	fmt.Println()

	// Beam and loading
	fmt.Println("BEAM AND LOADING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Configuration:\t%s\n", res.Analysis.Config())
	fmt.Fprintf(w, "  Span:\t%g mm\n", b.Length)
	for _, sup := range b.Supports {
		fmt.Fprintf(w, "  Support:\t%s at %g mm\n", sup.Kind, sup.Position)
	}
	if b.Spring != nil {
		fmt.Fprintf(w, "  Spring link:\tat %g mm\n", b.Spring.Position)
	}
	for _, p := range b.PointLoads {
		fmt.Fprintf(w, "  Point load:\t%g N at %g mm\n", p.Magnitude, p.Position)
	}
	for _, d := range b.DistributedLoads {
		fmt.Fprintf(w, "  Distributed load:\t%g N/mm from %g to %g mm\n", d.Intensity, d.Start, d.End)
	}
	fmt.Fprintf(w, "  Total load:\t%g N\n", b.TotalLoad())
	if s.DynamicFactor > 0 && s.DynamicFactor != 1 {
		fmt.Fprintf(w, "  Dynamic factor:\t%g applied to concentrated loads\n", s.DynamicFactor)
	}
	w.Flush()

	if analyzeDiagram {
		fmt.Println(diagram.DrawLoadingDiagram(res.Analysis))
	}
	fmt.Println()

	// Reactions
	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range rs.Supports {
		fmt.Fprintf(w, "  R (%s) at %g mm:\t%.6g N\n", r.Kind, r.Position, r.Force)
		if r.Kind == beam.Fixed {
			fmt.Fprintf(w, "  Fixing moment:\t%.6g N·mm\n", r.Moment)
		}
	}
	if rs.Spring != nil {
		fmt.Fprintf(w, "  Spring force at %g mm:\t%.6g N\n", rs.Spring.Position, rs.Spring.Force)
	}
	sumF, sumM := res.Analysis.CheckEquilibrium(0)
	equilibrium := "✓"
	if math.Abs(sumF) > 1e-6 || math.Abs(sumM) > 1e-3 {
		equilibrium = "⚠"
	}
	fmt.Fprintf(w, "  Equilibrium residuals:\tΣF = %.3g N, ΣM = %.3g N·mm %s\n", sumF, sumM, equilibrium)
	w.Flush()
	fmt.Println()

	// Internal forces
	fmt.Println("INTERNAL FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  V max:\t%.6g N\tat %g mm\n", ext.VMax.Value, ext.VMax.Position)
	fmt.Fprintf(w, "  V min:\t%.6g N\tat %g mm\n", ext.VMin.Value, ext.VMin.Position)
	fmt.Fprintf(w, "  M max:\t%.6g N·mm\tat %g mm\n", ext.MMax.Value, ext.MMax.Position)
	fmt.Fprintf(w, "  M min:\t%.6g N·mm\tat %g mm\n", ext.MMin.Value, ext.MMin.Position)
	fmt.Fprintf(w, "  Governing |M|:\t%.6g N·mm\n", ext.MaxAbsMoment())
	w.Flush()

	if analyzeDiagram {
		fmt.Println()
		fmt.Println(diagram.DrawShearGraph(res.Analysis))
		fmt.Println()
		fmt.Println(diagram.DrawMomentGraph(res.Analysis))
	}
	fmt.Println()

	// Section
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if s.Section.Kind != "" {
		fmt.Fprintf(w, "  Shape:\t%s\n", s.Section.Kind)
	}
	if res.Properties.Area > 0 {
		fmt.Fprintf(w, "  Area:\t%.6g mm²\n", res.Properties.Area)
	}
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g mm⁴\n", res.Properties.I)
	fmt.Fprintf(w, "  Extreme fiber (c):\t%g mm\n", res.Properties.C)
	fmt.Fprintf(w, "  Section modulus (S):\t%.6g mm³\n", res.Properties.S)
	if res.Properties.J > 0 {
		fmt.Fprintf(w, "  Polar moment (J):\t%.6g mm⁴\n", res.Properties.J)
	}
	if s.Section.HasOverrides() {
		fmt.Fprintf(w, "  Note:\tstated I and c override the geometry\n")
	}
	w.Flush()
	fmt.Println()

	// Stress and safety
	fmt.Println("STRESS AND SAFETY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s (σ_y = %g MPa)\n", s.Material.Name, s.Material.Yield)
	fmt.Fprintf(w, "  Bending stress:\t%.4g MPa\n", res.Flexure.Stress)
	mark := "✓"
	if !res.Flexure.Adequate {
		mark = "⚠"
	}
	fmt.Fprintf(w, "  Safety factor:\t%.4g against required %.3g %s\n", res.Flexure.SafetyFactor, res.Flexure.RequiredSF, mark)
	fmt.Fprintf(w, "  Assessment:\t%s\n", res.Flexure.Assessment)
	w.Flush()

	if res.Combined != nil {
		cb := res.Combined
		fmt.Println()
		fmt.Println("COMBINED BENDING AND TORSION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Bending resultant (σ_x):\t%.4g MPa\n", cb.BendingResultant)
		fmt.Fprintf(w, "  Torsion shear (τ):\t%.4g MPa\n", cb.TorsionShear)
		fmt.Fprintf(w, "  Principal stresses:\t%.4g / %.4g MPa\n", cb.Sigma1, cb.Sigma2)
		fmt.Fprintf(w, "  Max shear (τ_max):\t%.4g MPa\n", cb.TauMax)
		fmt.Fprintf(w, "  Von Mises stress:\t%.4g MPa\n", cb.VonMises)
		mark = "✓"
		if !cb.Adequate {
			mark = "⚠"
		}
		fmt.Fprintf(w, "  Governing criterion:\t%s, SF = %.4g %s\n", cb.GoverningMode, cb.SFGoverning, mark)
		fmt.Fprintf(w, "  Assessment:\t%s\n", cb.Assessment)
		w.Flush()
	}
	fmt.Println()

	// Summary box
	lines := []string{
		fmt.Sprintf("Max |V| = %.6g N", ext.MaxAbsShear()),
		fmt.Sprintf("Max |M| = %.6g N·mm", ext.MaxAbsMoment()),
		fmt.Sprintf("σ_max  = %.4g MPa", res.Flexure.Stress),
		fmt.Sprintf("SF     = %.4g (required %.3g)", res.GoverningSF(), s.RequiredSF),
	}
	fmt.Println(diagram.DrawSummaryBox("ANALYSIS SUMMARY", lines))

	// File exports
	if analyzeBundle != "" {
		bundle := chartdata.NewBundle(res, chartdata.Millimeters)
		if err := bundle.Write(analyzeBundle); err != nil {
			fmt.Printf("Error writing bundle: %v\n", err)
		} else {
			fmt.Printf("  Bundle written to: %s\n", analyzeBundle)
		}
	}
	if analyzeImage != "" {
		suffix := filepath.Ext(analyzeImage)
		stem := strings.TrimSuffix(analyzeImage, suffix)
		title := s.Title
		if title == "" {
			title = s.Beam.Name
		}
		if err := diagram.ExportShearDiagram(res.Analysis, title, stem+"_shear"+suffix); err != nil {
			fmt.Printf("Error exporting shear diagram: %v\n", err)
		} else {
			fmt.Printf("  Shear diagram written to: %s\n", stem+"_shear"+suffix)
		}
		if err := diagram.ExportMomentDiagram(res.Analysis, title, stem+"_moment"+suffix); err != nil {
			fmt.Printf("Error exporting moment diagram: %v\n", err)
		} else {
			fmt.Printf("  Moment diagram written to: %s\n", stem+"_moment"+suffix)
		}
	}
	if analyzeBundle != "" || analyzeImage != "" {
		fmt.Println()
	}
}
