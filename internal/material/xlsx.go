package material

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the workbook import.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // header rows to skip, default 1
}

// ReadXLSX reads per-material coefficient rows from an Excel workbook of
// environmental indicators. Expected columns, in order: material name,
// kg CO2e per kg, liters water per kg, durability score, cost tier.
// Rows with an empty name or unparsable numbers are skipped.
func ReadXLSX(path string, opts XLSXOptions) (map[string]Coefficients, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "material: open workbook")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	skip := opts.SkipRows
	if skip == 0 {
		skip = 1
	}

	entries := make(map[string]Coefficients)
	for i, row := range sheet.Rows {
		if i < skip {
			continue
		}
		cells := rowToStrings(row)
		if len(cells) < 4 || strings.TrimSpace(cells[0]) == "" {
			continue
		}

		co2, err1 := strconv.ParseFloat(strings.TrimSpace(cells[1]), 64)
		water, err2 := strconv.ParseFloat(strings.TrimSpace(cells[2]), 64)
		dur, err3 := strconv.ParseFloat(strings.TrimSpace(cells[3]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		tier := CostMedium
		if len(cells) > 4 {
			switch strings.ToLower(strings.TrimSpace(cells[4])) {
			case "low":
				tier = CostLow
			case "high":
				tier = CostHigh
			}
		}

		entries[Canonical(cells[0])] = Coefficients{
			CO2PerKg:   co2,
			WaterPerKg: water,
			Durability: dur,
			CostTier:   tier,
		}
	}

	if len(entries) == 0 {
		return nil, eris.Errorf("material: no usable rows in %s", path)
	}
	return entries, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("material: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("material: sheet index %d out of range (%d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}
