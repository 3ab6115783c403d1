package xlsxio

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
	"github.com/SiliconWit/mechanics-of-materials/internal/sweep"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		cell string
		want section.Definition
	}{
		{"rect 80x120", section.Definition{Kind: section.KindRectangular, Width: 80, Height: 120}},
		{"hollow 60x40x4", section.Definition{Kind: section.KindHollowRectangular, Width: 60, Height: 40, Thickness: 4}},
		{"hollow 60x40x4 @ 3.1e6:30", section.Definition{Kind: section.KindHollowRectangular, Width: 60, Height: 40, Thickness: 4, GivenI: 3.1e6, GivenC: 30}},
		{"circle 40", section.Definition{Kind: section.KindSolidCircular, Diameter: 40}},
		{"tube 50x4", section.Definition{Kind: section.KindCircularTube, Outer: 50, Thickness: 4}},
		{"TUBE 16/12", section.Definition{Kind: section.KindCircularTube, Outer: 16, Inner: 12}},
		{"given 8.2e6:75", section.Definition{Kind: section.KindGiven, GivenI: 8.2e6, GivenC: 75}},
	}
	for _, tt := range tests {
		got, err := parseSection(tt.cell)
		if err != nil {
			t.Errorf("parseSection(%q): %v", tt.cell, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSection(%q) = %+v, want %+v", tt.cell, got, tt.want)
		}
	}

	bad := []string{
		"", "rect", "rect 80", "rect 80x120x5", "rect ax120",
		"pentagon 5", "tube 16/12/10", "given 8.2e6", "rect 80x120 @",
		"hollow 60x40x4 @ 3.1e6",
	}
	for _, cell := range bad {
		if _, err := parseSection(cell); err == nil {
			t.Errorf("parseSection(%q) should fail", cell)
		}
	}
}

func TestParseElements(t *testing.T) {
	sups, err := parseSupports(" 0 : PINNED ; 3000:roller ")
	if err != nil {
		t.Fatalf("parseSupports: %v", err)
	}
	if len(sups) != 2 || sups[0].Kind != "pinned" || sups[1].Position != 3000 {
		t.Errorf("unexpected supports: %+v", sups)
	}

	loads, err := parsePointLoads("1500:5000; 4000:3000")
	if err != nil {
		t.Fatalf("parsePointLoads: %v", err)
	}
	if len(loads) != 2 || loads[1].Magnitude != 3000 {
		t.Errorf("unexpected loads: %+v", loads)
	}

	dist, err := parseDistributed("0-4000:0.8")
	if err != nil {
		t.Fatalf("parseDistributed: %v", err)
	}
	if len(dist) != 1 || dist[0].End != 4000 || dist[0].Intensity != 0.8 {
		t.Errorf("unexpected distributed load: %+v", dist)
	}

	for _, cell := range []string{"1500", "a:b", "0:pinned; oops"} {
		if _, err := parsePointLoads(cell); err == nil {
			t.Errorf("parsePointLoads(%q) should fail", cell)
		}
	}
	for _, cell := range []string{"0+400:5", "0-x:5", "0-400"} {
		if _, err := parseDistributed(cell); err == nil {
			t.Errorf("parseDistributed(%q) should fail", cell)
		}
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.xlsx")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	beams, err := ReadScenarios(path)
	if err != nil {
		t.Fatalf("ReadScenarios: %v", err)
	}
	if len(beams) != 1 {
		t.Fatalf("want 1 beam from the template, got %d", len(beams))
	}
	s := beams[0]
	if s.ID != "sample_arm" || s.Beam.Length != 1200 {
		t.Errorf("unexpected template beam: %+v", s)
	}
	if len(s.Beam.Supports) != 1 || s.Beam.Supports[0].Kind != "fixed" {
		t.Errorf("unexpected supports: %+v", s.Beam.Supports)
	}
	if s.Section.GivenI != 2.45e6 || s.Section.GivenC != 25 {
		t.Errorf("unexpected section overrides: %+v", s.Section)
	}
	if s.Material.Name != "Structural steel (A36)" {
		t.Errorf("unexpected material: %q", s.Material.Name)
	}

	if _, err := s.Analyze(); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := WriteResults(filepath.Join(dir, "results.xlsx"), nil); err == nil {
		t.Fatalf("WriteResults with no rows should fail")
	}
}

func TestResultsSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.xlsx")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	beams, err := ReadScenarios(path)
	if err != nil {
		t.Fatalf("ReadScenarios: %v", err)
	}
	res, err := beams[0].Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	out := filepath.Join(dir, "results.xlsx")
	if err := WriteResults(out, []*scenario.Result{res}); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(SheetResults)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want header and one result row, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || rows[1][0] != "sample_arm" {
		t.Errorf("unexpected id cells: %v / %v", rows[0][0], rows[1][0])
	}
	if rows[1][2] != "cantilever" {
		t.Errorf("unexpected configuration: %q", rows[1][2])
	}
	sf, err := strconv.ParseFloat(rows[1][8], 64)
	if err != nil || math.Abs(sf-25.5208) > 1e-3 {
		t.Errorf("unexpected safety factor cell %q (err %v)", rows[1][8], err)
	}
}

func TestReadScenarioErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadScenarios(filepath.Join(dir, "absent.xlsx")); err == nil {
		t.Errorf("missing workbook should fail")
	}

	// header without the supports column
	path := filepath.Join(dir, "noheader.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "B1", "length")
	f.SetCellValue("Sheet1", "A2", "x")
	f.SetCellValue("Sheet1", "B2", "100")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()
	if _, err := ReadScenarios(path); err == nil || !strings.Contains(err.Error(), "supports") {
		t.Errorf("missing column should be reported, got %v", err)
	}

	// bad number in a data row, reported with its row number
	path = filepath.Join(dir, "badrow.xlsx")
	f = excelize.NewFile()
	for c, h := range beamColumns {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue("Sheet1", cell, h)
	}
	row := []string{"bad_beam", "", "abc", "0:pinned; 1000:roller", "", "", "", "rect 10x20", "structural_steel", "", ""}
	for c, v := range row {
		cell, _ := excelize.CoordinatesToCellName(c+1, 2)
		f.SetCellValue("Sheet1", cell, v)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()
	if _, err := ReadScenarios(path); err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Errorf("bad row should be reported with its number, got %v", err)
	}
}

func TestSweepSheet(t *testing.T) {
	s, err := scenario.ByID("gantry_rail")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	res, err := sweep.Run(&sweep.Config{Scenario: s, Steps: 13})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "travel.xlsx")
	if err := WriteSweep(path, res); err != nil {
		t.Fatalf("WriteSweep: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(SheetSweep)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 14 {
		t.Fatalf("got %d rows, want header plus 13 stations", len(rows))
	}
	if rows[0][0] != "position_mm" || rows[0][7] != "governs" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	// midspan governs the simply supported rail
	governs := 0
	for _, row := range rows[1:] {
		if len(row) > 7 && row[7] == "TRUE" {
			governs++
			pos, err := strconv.ParseFloat(row[0], 64)
			if err != nil || math.Abs(pos-600) > 1e-9 {
				t.Errorf("governing station at %q, want 600", row[0])
			}
		}
	}
	if governs != 1 {
		t.Errorf("%d stations marked governing, want 1", governs)
	}

	if err := WriteSweep(filepath.Join(dir, "empty.xlsx"), nil); err == nil {
		t.Error("empty sweep should fail")
	}
}
