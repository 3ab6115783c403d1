package report

import (
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
)

// Write renders one report page per result and saves the PDF to path
func Write(path string, results ...*scenario.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("nothing to report")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Beam analysis report", false)
	for _, r := range results {
		addResult(pdf, r)
	}
	return pdf.OutputFileAndClose(path)
}

func addResult(pdf *gofpdf.Fpdf, r *scenario.Result) {
	s := r.Scenario
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, s.ID)
	pdf.Ln(10)
	if s.Description != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, s.Description, "", "", false)
		pdf.Ln(4)
	}

	b := r.Analysis.Beam()
	heading(pdf, "Loading")
	row(pdf, "Configuration", r.Analysis.Config().String())
	row(pdf, "Span", fmt.Sprintf("%g mm", b.Length))
	for _, sup := range b.Supports {
		row(pdf, "Support", fmt.Sprintf("%s at %g mm", sup.Kind, sup.Position))
	}
	if b.Spring != nil {
		row(pdf, "Spring", fmt.Sprintf("at %g mm", b.Spring.Position))
	}
	for _, p := range b.PointLoads {
		row(pdf, "Point load", fmt.Sprintf("%g N at %g mm", p.Magnitude, p.Position))
	}
	for _, w := range b.DistributedLoads {
		row(pdf, "Distributed load", fmt.Sprintf("%g N/mm from %g to %g mm", w.Intensity, w.Start, w.End))
	}
	row(pdf, "Total load", fmt.Sprintf("%g N", b.TotalLoad()))
	if s.DynamicFactor > 0 && s.DynamicFactor != 1 {
		row(pdf, "Dynamic factor", fmt.Sprintf("%g on concentrated loads", s.DynamicFactor))
	}

	heading(pdf, "Section and material")
	row(pdf, "Section", sectionLabel(&s.Section))
	row(pdf, "Moment of inertia", fmt.Sprintf("%.4g mm4", r.Properties.I))
	row(pdf, "Extreme fiber", fmt.Sprintf("%.4g mm", r.Properties.C))
	row(pdf, "Section modulus", fmt.Sprintf("%.4g mm3", r.Properties.S))
	if r.Properties.J > 0 {
		row(pdf, "Polar moment", fmt.Sprintf("%.4g mm4", r.Properties.J))
	}
	row(pdf, "Material", s.Material.Name)
	row(pdf, "Yield strength", fmt.Sprintf("%g MPa", s.Material.Yield))

	heading(pdf, "Support reactions")
	rs := r.Analysis.Reactions()
	for _, sup := range rs.Supports {
		row(pdf, fmt.Sprintf("R at %g mm", sup.Position), fmt.Sprintf("%.6g N", sup.Force))
		if sup.Kind == beam.Fixed {
			row(pdf, "Fixing moment", fmt.Sprintf("%.6g N-mm", sup.Moment))
		}
	}
	if rs.Spring != nil {
		row(pdf, fmt.Sprintf("Spring at %g mm", rs.Spring.Position), fmt.Sprintf("%.6g N", rs.Spring.Force))
	}

	heading(pdf, "Internal forces")
	ext := r.Extremes
	row(pdf, "V max", fmt.Sprintf("%.6g N at %g mm", ext.VMax.Value, ext.VMax.Position))
	row(pdf, "V min", fmt.Sprintf("%.6g N at %g mm", ext.VMin.Value, ext.VMin.Position))
	row(pdf, "M max", fmt.Sprintf("%.6g N-mm at %g mm", ext.MMax.Value, ext.MMax.Position))
	row(pdf, "M min", fmt.Sprintf("%.6g N-mm at %g mm", ext.MMin.Value, ext.MMin.Position))

	heading(pdf, "Stress and safety")
	row(pdf, "Bending stress", fmt.Sprintf("%.4g MPa", r.Flexure.Stress))
	row(pdf, "Safety factor", fmt.Sprintf("%.4g against required %.3g", r.Flexure.SafetyFactor, r.Flexure.RequiredSF))
	row(pdf, "Assessment", r.Flexure.Assessment)
	if c := r.Combined; c != nil {
		row(pdf, "Resultant bending", fmt.Sprintf("%.4g MPa", c.BendingResultant))
		row(pdf, "Torsion shear", fmt.Sprintf("%.4g MPa", c.TorsionShear))
		row(pdf, "Principal stresses", fmt.Sprintf("%.4g / %.4g MPa", c.Sigma1, c.Sigma2))
		row(pdf, "Max shear", fmt.Sprintf("%.4g MPa", c.TauMax))
		row(pdf, "Von Mises", fmt.Sprintf("%.4g MPa", c.VonMises))
		row(pdf, "Governing", fmt.Sprintf("%s, factor %.4g", c.GoverningMode, c.SFGoverning))
		row(pdf, "Assessment", c.Assessment)
	}

	if s.Expected != nil {
		if v, err := s.Verify(); err == nil {
			heading(pdf, "Verification")
			for _, c := range v.Checks {
				verdict := "ok"
				if !c.Match {
					verdict = "MISMATCH"
				}
				row(pdf, c.Name, fmt.Sprintf("expected %.6g, got %.6g (%s)", c.Expected, c.Actual, verdict))
			}
			for _, n := range v.Notes {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, "note: "+n, "", "", false)
			}
		}
	}
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(55, 6, label, "", 0, "", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "", false, 0, "")
}

func sectionLabel(d *section.Definition) string {
	var base string
	switch d.Kind {
	case section.KindRectangular:
		base = fmt.Sprintf("rectangle %g x %g mm", d.Width, d.Height)
	case section.KindHollowRectangular:
		base = fmt.Sprintf("hollow rectangle %g x %g mm, wall %g mm", d.Width, d.Height, d.Thickness)
	case section.KindSolidCircular:
		base = fmt.Sprintf("solid round %g mm", d.Diameter)
	case section.KindCircularTube:
		if d.Inner > 0 {
			base = fmt.Sprintf("tube %g / %g mm", d.Outer, d.Inner)
		} else {
			base = fmt.Sprintf("tube %g mm, wall %g mm", d.Outer, d.Thickness)
		}
	case section.KindPolygon:
		base = fmt.Sprintf("polygon with %d vertices", len(d.Vertices))
	default:
		base = "stated properties"
	}
	var given []string
	if d.GivenI > 0 {
		given = append(given, fmt.Sprintf("I = %.4g mm4", d.GivenI))
	}
	if d.GivenC > 0 {
		given = append(given, fmt.Sprintf("c = %g mm", d.GivenC))
	}
	if len(given) > 0 && d.Kind != section.KindGiven && d.Kind != "" {
		base += " (" + strings.Join(given, ", ") + " given)"
	} else if d.Kind == section.KindGiven || d.Kind == "" {
		base = "stated properties: " + strings.Join(given, ", ")
	}
	return base
}
