package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"TapeLab/internal/calc/properties"
	"TapeLab/internal/tape"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                 `json:"count"`
	Results []properties.Result `json:"results"`
}

// Import evaluates tape configurations uploaded as an xlsx sheet.
// Expected columns: backing, adhesive, surface, environment, thickness_um,
// time_impact_days(optional), width_mm(optional), height_mm(optional).
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []properties.Result
	for i := 1; i < len(rows); i++ {
		cfg, err := ParseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := properties.Calculate(cfg)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// ParseRow maps one sheet row onto a configuration record.
func ParseRow(row []string) (tape.Config, error) {
	if len(row) < 5 {
		return tape.Config{}, fmt.Errorf("bad row")
	}
	thickness, err := toFloat(row[4])
	if err != nil {
		return tape.Config{}, err
	}
	cfg := tape.Config{
		Backing:     row[0],
		Adhesive:    row[1],
		Surface:     row[2],
		Environment: row[3],
		ThicknessUm: thickness,
	}
	if len(row) > 5 && row[5] != "" {
		cfg.TimeImpactDays, _ = toFloat(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		cfg.WidthMm, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		cfg.HeightMm, _ = toFloat(row[7])
	}
	return cfg, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
