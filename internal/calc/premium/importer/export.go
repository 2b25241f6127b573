package importer

import (
	"encoding/json"
	"net/http"

	"TapeLab/internal/calc/properties"
	"TapeLab/internal/tape"
	"github.com/xuri/excelize/v2"
)

type ExportInput struct {
	Items []tape.Config `json:"items"`
}

var exportHeader = []string{
	"backing", "adhesive", "surface", "environment", "thickness_um",
	"time_impact_days", "peel_adhesion_ncm", "hold_strength_ncm2",
	"stretch_pct", "total_thickness_um", "temperature_factor",
}

// Export evaluates the posted configurations and streams the results back
// as an xlsx workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input ExportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}

	f, err := BuildWorkbook(input.Items)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"tape-properties.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// BuildWorkbook renders one result row per configuration. Shared with the
// offline batch CLI.
func BuildWorkbook(items []tape.Config) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for i, cfg := range items {
		res, err := properties.Calculate(cfg)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			cfg.Backing, cfg.Adhesive, cfg.Surface, cfg.Environment,
			cfg.ThicknessUm, cfg.TimeImpactDays,
			res.PeelAdhesionNcm, res.HoldStrengthNcm2, res.StretchPct,
			res.TotalThicknessUm, res.TemperatureFactor,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
