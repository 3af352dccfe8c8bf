package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

const (
	summarySheet = "Summary"
	layersSheet  = "Layers"
)

// WriteXLSX writes a workbook with a per-SKU summary sheet and a per-layer sheet.
func WriteXLSX(w io.Writer, report model.OptimizationReport) error {
	if len(report.SKUs) == 0 {
		return ErrEmptyReport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(layersSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	c := report.Container
	summary := [][]any{
		{"Location", report.Location.Name, report.Location.Dimensions.String(), report.Location.MaxWeight},
		{"Pallet", report.Pallet.Name, report.Pallet.Dimensions.String(), report.Pallet.Weight},
		{"Usable space", c.Bounds().String(), c.MaxWeight},
		{},
		{"SKU", "Width", "Depth", "Height", "Weight", "Status", "Orientation", "Quantity", "Layers", "Utilization", "Total weight"},
	}
	for _, s := range report.SKUs {
		summary = append(summary, []any{
			s.SKU.Name, s.SKU.Width, s.SKU.Depth, s.SKU.Height, s.SKU.Weight,
			string(s.Status), s.Orientation, s.Quantity, len(s.Layers), s.Utilization, s.TotalWeight,
		})
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A5", "K5", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	layers := [][]any{{"SKU", "Level", "Z", "Elevation", "Count", "Dimensions", "Orientation", "Arrangement"}}
	for _, s := range report.SKUs {
		for _, l := range s.Layers {
			layers = append(layers, []any{
				s.SKU.Name, l.Level, l.Z, l.Elevation, l.Count, l.Dims.String(), l.Label, l.Arrangement,
			})
		}
	}
	if err := writeRows(f, layersSheet, layers); err != nil {
		return err
	}
	if err := f.SetCellStyle(layersSheet, "A1", "H1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("set width: %w", err)
	}
	if err := f.SetColWidth(layersSheet, "H", "H", 40); err != nil {
		return fmt.Errorf("set width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
