// Package export renders optimization reports as PDF and XLSX documents.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// ErrEmptyReport is returned when a report has no SKUs to render.
var ErrEmptyReport = errors.New("report has no skus")

// Page layout, A4 landscape in mm.
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	margin       = 15.0
	contentWidth = pageWidth - 2*margin
	lineHeight   = 6.0
	diagramSize  = 80.0
)

var (
	palletFill = [3]int{210, 180, 140}
	unitFill   = [3]int{33, 150, 243}
	emptyFill  = [3]int{240, 240, 240}
)

// WritePDF writes a summary page followed by one page per SKU with its layer table
// and, when placements are included in the report, a top view of the first layer.
func WritePDF(w io.Writer, report model.OptimizationReport) error {
	if len(report.SKUs) == 0 {
		return ErrEmptyReport
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("Slotting report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	renderSummaryPage(pdf, tr, report)

	for _, sku := range report.SKUs {
		pdf.AddPage()
		renderSKUPage(pdf, tr, report.Container, sku)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func renderSummaryPage(pdf *fpdf.Fpdf, tr func(string) string, report model.OptimizationReport) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 10, "Slotting Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	c := report.Container
	lines := []string{
		fmt.Sprintf("Location: %s (%s, max %.1f)", report.Location.Name, report.Location.Dimensions, report.Location.MaxWeight),
		fmt.Sprintf("Pallet: %s (%s, %.1f)", report.Pallet.Name, report.Pallet.Dimensions, report.Pallet.Weight),
		fmt.Sprintf("Usable space: %s, max load %.1f, pallet offset (%.1f, %.1f)", c.Bounds(), c.MaxWeight, c.OffsetX, c.OffsetY),
		fmt.Sprintf("Generated: %s | SKUs packed: %d of %d", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), report.PackedCount(), len(report.SKUs)),
	}
	for _, l := range lines {
		pdf.CellFormat(contentWidth, lineHeight, tr(l), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	headers := []string{"SKU", "Dimensions", "Weight", "Status", "Orientation", "Quantity", "Layers", "Utilization", "Total weight"}
	widths := []float64{38, 30, 18, 22, 50, 20, 16, 24, 26}
	tableHeader(pdf, tr, headers, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range report.SKUs {
		orientation := s.Orientation
		if orientation == "" {
			orientation = "-"
		}
		row := []string{
			s.SKU.Name,
			s.SKU.Dimensions.String(),
			fmt.Sprintf("%.2f", s.SKU.Weight),
			string(s.Status),
			orientation,
			fmt.Sprintf("%d", s.Quantity),
			fmt.Sprintf("%d", len(s.Layers)),
			fmt.Sprintf("%.1f%%", s.Utilization*100),
			fmt.Sprintf("%.2f", s.TotalWeight),
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], lineHeight, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func renderSKUPage(pdf *fpdf.Fpdf, tr func(string) string, c model.Container, s model.SKUReport) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth, 10, tr(fmt.Sprintf("%s (%s)", s.SKU.Name, s.SKU.Dimensions)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if s.Status != model.SKUStatusPacked {
		pdf.CellFormat(contentWidth, lineHeight, "No orientation fits the usable space.", "", 1, "L", false, 0, "")
		return
	}
	summary := fmt.Sprintf("%s | %d units in %d layers | utilization %.1f%% | total weight %.2f",
		s.Orientation, s.Quantity, len(s.Layers), s.Utilization*100, s.TotalWeight)
	pdf.CellFormat(contentWidth, lineHeight, tr(summary), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	top := pdf.GetY()
	headers := []string{"Level", "Elevation", "Count", "Dimensions", "Arrangement"}
	widths := []float64{16, 22, 16, 32, 84}
	tableHeader(pdf, tr, headers, widths)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range s.Layers {
		row := []string{
			fmt.Sprintf("%d", l.Level),
			fmt.Sprintf("%.1f", l.Elevation),
			fmt.Sprintf("%d", l.Count),
			l.Dims.String(),
			l.Arrangement,
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], lineHeight, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(s.Placements) > 0 {
		drawTopView(pdf, c, s.Placements, margin+contentWidth-diagramSize, top)
	}
}

// drawTopView draws the pallet footprint and the units resting directly on it.
func drawTopView(pdf *fpdf.Fpdf, c model.Container, placements []model.Placement, x, y float64) {
	scale := math.Min(diagramSize/c.Width, diagramSize/c.Depth)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y)
	pdf.CellFormat(diagramSize, lineHeight, "Layer 1, top view", "", 0, "L", false, 0, "")
	y += lineHeight

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	setFill(pdf, palletFill)
	pdf.Rect(x, y, c.Width*scale, c.Depth*scale, "FD")

	pdf.SetLineWidth(0.2)
	for _, p := range placements {
		if p.Z > model.Epsilon {
			continue
		}
		setFill(pdf, unitFill)
		pdf.Rect(x+p.X*scale, y+p.Y*scale, p.Dims.Width*scale, p.Dims.Depth*scale, "FD")
	}
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	setFill(pdf, emptyFill)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineHeight, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func setFill(pdf *fpdf.Fpdf, rgb [3]int) {
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
}
