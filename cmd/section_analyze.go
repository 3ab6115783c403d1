package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SiliconWit/mechanics-of-materials/internal/codec"
	"github.com/SiliconWit/mechanics-of-materials/internal/diagram"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionAnalyzeFile  string
	sectionAnalyzeShape string

	// Rectangular dimensions (mm)
	sectionAnalyzeWidth     float64
	sectionAnalyzeHeight    float64
	sectionAnalyzeThickness float64

	// Circular dimensions (mm)
	sectionAnalyzeDiameter float64
	sectionAnalyzeOuter    float64
	sectionAnalyzeInner    float64

	// Stated properties that override the computed ones
	sectionAnalyzeInertia float64
	sectionAnalyzeFiber   float64
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the properties of a cross-section",
	Long: `Compute area, moment of inertia, extreme fiber distance, section
modulus, and (for circular shapes) the polar moment.

The shape comes from --shape with dimension flags, or from a JSON/YAML
definition file. Stated properties (--inertia, --fiber) override the
computed ones, matching how datasheet values enter a check.

Examples:
  beamcalc section analyze --shape rect --width 80 --height 120
  beamcalc section analyze --shape hollow-rect --width 60 --height 40 --thickness 4
  beamcalc section analyze --shape circle --diameter 40
  beamcalc section analyze --shape tube --outer 16 --inner 12
  beamcalc section analyze --shape tube --outer 50 --thickness 4
  beamcalc section analyze --file t-profile.json
  beamcalc section analyze --shape given --inertia 8.2e6 --fiber 75`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to a section JSON/YAML file")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeShape, "shape", "s", "", "rect, hollow-rect, circle, tube, or given")

	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeWidth, "width", "b", 0, "Width (mm)")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeHeight, "height", 0, "Height (mm)")
	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeThickness, "thickness", "t", 0, "Wall thickness (mm)")

	sectionAnalyzeCmd.Flags().Float64VarP(&sectionAnalyzeDiameter, "diameter", "d", 0, "Diameter of a solid circle (mm)")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeOuter, "outer", 0, "Tube outer diameter (mm)")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeInner, "inner", 0, "Tube inner diameter (mm)")

	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeInertia, "inertia", 0, "Stated moment of inertia I (mm⁴)")
	sectionAnalyzeCmd.Flags().Float64Var(&sectionAnalyzeFiber, "fiber", 0, "Stated extreme fiber distance c (mm)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	def, err := sectionFromFlags()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	props, err := def.Resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", def.Kind)
	if def.Width > 0 {
		fmt.Fprintf(w, "  Width:\t%g mm\n", def.Width)
	}
	if def.Height > 0 {
		fmt.Fprintf(w, "  Height:\t%g mm\n", def.Height)
	}
	if def.Thickness > 0 {
		fmt.Fprintf(w, "  Wall thickness:\t%g mm\n", def.Thickness)
	}
	if def.Diameter > 0 {
		fmt.Fprintf(w, "  Diameter:\t%g mm\n", def.Diameter)
	}
	if def.Outer > 0 {
		fmt.Fprintf(w, "  Outer diameter:\t%g mm\n", def.Outer)
	}
	if def.Inner > 0 {
		fmt.Fprintf(w, "  Inner diameter:\t%g mm\n", def.Inner)
	}
	if len(def.Vertices) > 0 {
		fmt.Fprintf(w, "  Vertices:\t%d points\n", len(def.Vertices))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if props.Area > 0 {
		fmt.Fprintf(w, "  Area (A):\t%.6g mm²\n", props.Area)
	}
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g mm⁴\n", props.I)
	fmt.Fprintf(w, "  Extreme fiber (c):\t%g mm\n", props.C)
	fmt.Fprintf(w, "  Section modulus (S):\t%.6g mm³\n", props.S)
	if props.J > 0 {
		fmt.Fprintf(w, "  Polar moment (J):\t%.6g mm⁴\n", props.J)
	}
	w.Flush()
	fmt.Println()

	if def.HasOverrides() {
		if computed, err := def.ComputedProperties(); err == nil {
			fmt.Printf("  Stated I and c override the geometry (computed: I = %.6g mm⁴, c = %g mm).\n\n",
				computed.I, computed.C)
		}
	}

	lines := []string{
		fmt.Sprintf("I = %.6g mm⁴", props.I),
		fmt.Sprintf("c = %g mm", props.C),
		fmt.Sprintf("S = %.6g mm³", props.S),
	}
	if props.J > 0 {
		lines = append(lines, fmt.Sprintf("J = %.6g mm⁴", props.J))
	}
	fmt.Println(diagram.DrawSummaryBox("SECTION CONSTANTS", lines))
}

func sectionFromFlags() (*section.Definition, error) {
	if sectionAnalyzeFile != "" {
		if sectionAnalyzeShape != "" {
			return nil, fmt.Errorf("use either --file or --shape, not both")
		}
		var def section.Definition
		if err := codec.DecodeFile(sectionAnalyzeFile, &def); err != nil {
			return nil, err
		}
		return &def, nil
	}

	def := &section.Definition{
		GivenI: sectionAnalyzeInertia,
		GivenC: sectionAnalyzeFiber,
	}
	switch sectionAnalyzeShape {
	case "rect", "rectangular":
		def.Kind = section.KindRectangular
		def.Width, def.Height = sectionAnalyzeWidth, sectionAnalyzeHeight
	case "hollow-rect", "hollow":
		def.Kind = section.KindHollowRectangular
		def.Width, def.Height = sectionAnalyzeWidth, sectionAnalyzeHeight
		def.Thickness = sectionAnalyzeThickness
	case "circle":
		def.Kind = section.KindSolidCircular
		def.Diameter = sectionAnalyzeDiameter
	case "tube":
		def.Kind = section.KindCircularTube
		def.Outer, def.Inner = sectionAnalyzeOuter, sectionAnalyzeInner
		def.Thickness = sectionAnalyzeThickness
	case "given":
		def.Kind = section.KindGiven
	case "":
		return nil, fmt.Errorf("name a shape with --shape or a definition with --file")
	default:
		return nil, fmt.Errorf("unknown shape %q, want rect, hollow-rect, circle, tube, or given", sectionAnalyzeShape)
	}
	return def, nil
}
