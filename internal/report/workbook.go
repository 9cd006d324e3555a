package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"pedietcalc/internal/recipe"
)

// SheetName is the worksheet holding the recipe breakdown.
const SheetName = "Recipe"

var workbookHeader = []interface{}{
	"Ingredient",
	"Protein per serving (g)", "Fat per serving (g)", "Net carbs per serving (g)",
	"Servings used",
	"Protein in recipe (g)", "Fat in recipe (g)", "Net carbs in recipe (g)",
	"P:E ratio",
}

// Workbook lays the summary out as a spreadsheet: a title row, a header row,
// one row per ingredient and a closing totals row. The caller owns the file.
func Workbook(s Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := sw.SetRow("A1", []interface{}{s.Title}); err != nil {
		f.Close()
		return nil, err
	}
	if err := sw.SetRow("A2", workbookHeader); err != nil {
		f.Close()
		return nil, err
	}

	next := 3
	for _, line := range s.Lines {
		row := []interface{}{
			line.Name,
			round2(line.PerServing.Protein), round2(line.PerServing.Fat), round2(line.PerServing.NetCarbs),
			round2(line.Servings),
			round2(line.InRecipe.Protein), round2(line.InRecipe.Fat), round2(line.InRecipe.NetCarbs),
			line.Ratio,
		}
		cell, _ := excelize.CoordinatesToCellName(1, next)
		if err := sw.SetRow(cell, row); err != nil {
			f.Close()
			return nil, err
		}
		next++
	}

	totals := []interface{}{
		"Totals", nil, nil, nil, nil,
		round2(s.Totals.Protein), round2(s.Totals.Fat), round2(s.Totals.NetCarbs),
		s.Ratio,
	}
	cell, _ := excelize.CoordinatesToCellName(1, next)
	if err := sw.SetRow(cell, totals); err != nil {
		f.Close()
		return nil, err
	}
	if s.Link != "" {
		cell, _ = excelize.CoordinatesToCellName(1, next+2)
		if err := sw.SetRow(cell, []interface{}{"Share link", s.Link}); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteWorkbook streams the xlsx rendition of s to w.
func WriteWorkbook(w io.Writer, s Summary) error {
	f, err := Workbook(s)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the xlsx rendition of s to path.
func SaveWorkbook(path string, s Summary) error {
	f, err := Workbook(s)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// round2 stores the same value the printed summary shows.
func round2(value float64) float64 {
	parsed, err := strconv.ParseFloat(recipe.FormatNumber(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
