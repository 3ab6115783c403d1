package xlsxio

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/SiliconWit/mechanics-of-materials/internal/sweep"
)

// Workbook sheet names. The reader falls back to the first sheet when the
// input workbook does not name one "Beams".
const (
	SheetBeams   = "Beams"
	SheetResults = "Results"
	SheetSweep   = "Sweep"
)

// beamColumns is the input header in column order
var beamColumns = []string{
	"id", "title", "length", "supports", "point_loads", "distributed_loads",
	"spring", "section", "material", "required_sf", "dynamic_factor",
}

var requiredColumns = []string{"id", "length", "supports", "section", "material"}

var resultColumns = []string{
	"id", "title", "configuration", "total_load_n", "reactions_n",
	"max_shear_n", "max_moment_nmm", "stress_mpa", "safety_factor",
	"assessment", "adequate",
}

var sweepColumns = []string{
	"position_mm", "reactions_n", "max_shear_n", "max_moment_nmm",
	"moment_at_mm", "stress_mpa", "safety_factor", "governs",
}

// ReadScenarios loads one scenario per row from the workbook. Blank id
// cells mark spacer rows and are skipped.
func ReadScenarios(path string) ([]*scenario.Scenario, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if idx, err := f.GetSheetIndex(SheetBeams); err == nil && idx >= 0 {
		sheet = SheetBeams
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no beam rows", sheet)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("sheet %s is missing the %q column", sheet, name)
		}
	}

	var out []*scenario.Scenario
	for i, row := range rows[1:] {
		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if get("id") == "" {
			continue
		}
		s, err := rowScenario(get)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sheet %s holds no beams", sheet)
	}
	return out, nil
}

func rowScenario(get func(string) string) (*scenario.Scenario, error) {
	s := &scenario.Scenario{ID: strings.ToLower(get("id")), Title: get("title")}
	s.Beam.Name = s.ID

	var err error
	if s.Beam.Length, err = number(get("length")); err != nil {
		return nil, fmt.Errorf("length: %w", err)
	}
	if s.Beam.Supports, err = parseSupports(get("supports")); err != nil {
		return nil, fmt.Errorf("supports: %w", err)
	}
	if cell := get("point_loads"); cell != "" {
		if s.Beam.PointLoads, err = parsePointLoads(cell); err != nil {
			return nil, fmt.Errorf("point_loads: %w", err)
		}
	}
	if cell := get("distributed_loads"); cell != "" {
		if s.Beam.DistributedLoads, err = parseDistributed(cell); err != nil {
			return nil, fmt.Errorf("distributed_loads: %w", err)
		}
	}
	if cell := get("spring"); cell != "" {
		x, err := number(cell)
		if err != nil {
			return nil, fmt.Errorf("spring: %w", err)
		}
		s.Beam.Spring = &beam.Spring{Position: x}
	}
	if s.Section, err = parseSection(get("section")); err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	mat, err := material.ByName(get("material"))
	if err != nil {
		return nil, err
	}
	s.Material = *mat
	if cell := get("required_sf"); cell != "" {
		if s.RequiredSF, err = number(cell); err != nil {
			return nil, fmt.Errorf("required_sf: %w", err)
		}
	}
	if cell := get("dynamic_factor"); cell != "" {
		if s.DynamicFactor, err = number(cell); err != nil {
			return nil, fmt.Errorf("dynamic_factor: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteResults saves one row per analyzed beam
func WriteResults(path string, results []*scenario.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("nothing to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetResults); err != nil {
		return err
	}
	for c, h := range resultColumns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue(SheetResults, cell, h)
	}

	for r, res := range results {
		row := r + 2
		set := func(c int, v any) {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			f.SetCellValue(SheetResults, cell, v)
		}

		rs := res.Analysis.Reactions()
		reactions := make([]string, 0, len(rs.Supports)+1)
		for _, sup := range rs.Supports {
			reactions = append(reactions, fmt.Sprintf("%.6g", sup.Force))
		}
		if rs.Spring != nil {
			reactions = append(reactions, fmt.Sprintf("spring %.6g", rs.Spring.Force))
		}

		set(0, res.Scenario.ID)
		set(1, res.Scenario.Title)
		set(2, res.Analysis.Config().String())
		set(3, res.Analysis.Beam().TotalLoad())
		set(4, strings.Join(reactions, "; "))
		set(5, res.Extremes.MaxAbsShear())
		set(6, res.Extremes.MaxAbsMoment())
		set(7, res.Flexure.Stress)
		set(8, res.GoverningSF())
		set(9, assessmentOf(res))
		set(10, adequateOf(res))
	}

	f.SetColWidth(SheetResults, "A", "K", 16)
	return f.SaveAs(path)
}

// WriteSweep saves a travel study, one row per station of the moving load
func WriteSweep(path string, res *sweep.Result) error {
	if res == nil || len(res.Stations) == 0 {
		return fmt.Errorf("nothing to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSweep); err != nil {
		return err
	}
	for c, h := range sweepColumns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue(SheetSweep, cell, h)
	}

	for r, st := range res.Stations {
		row := r + 2
		set := func(c int, v any) {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			f.SetCellValue(SheetSweep, cell, v)
		}

		reactions := make([]string, len(st.Reactions))
		for i, force := range st.Reactions {
			reactions[i] = fmt.Sprintf("%.6g", force)
		}

		set(0, st.Position)
		set(1, strings.Join(reactions, "; "))
		set(2, st.MaxAbsShear)
		set(3, st.MaxAbsMoment)
		set(4, st.MomentAt)
		set(5, st.Stress)
		set(6, st.SafetyFactor)
		set(7, st.Position == res.Worst.Position)
	}

	f.SetColWidth(SheetSweep, "A", "H", 16)
	return f.SaveAs(path)
}

// WriteTemplate emits a workbook with the expected header and a sample row
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetBeams); err != nil {
		return err
	}
	for c, h := range beamColumns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue(SheetBeams, cell, h)
	}
	sample := []any{
		"sample_arm", "Sample cantilever arm", 1200, "0:fixed", "1200:800",
		"", "", "tube 50x4 @ 2.45e6:25", "structural_steel", 3, "",
	}
	for c, v := range sample {
		cell, _ := excelize.CoordinatesToCellName(c+1, 2)
		f.SetCellValue(SheetBeams, cell, v)
	}
	f.SetColWidth(SheetBeams, "A", "K", 18)
	return f.SaveAs(path)
}

func assessmentOf(r *scenario.Result) string {
	if r.Combined != nil {
		return r.Combined.Assessment
	}
	return r.Flexure.Assessment
}

func adequateOf(r *scenario.Result) bool {
	if r.Combined != nil {
		return r.Combined.Adequate
	}
	return r.Flexure.Adequate
}
