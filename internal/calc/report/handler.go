package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"TapeLab/internal/calc/aging"
	"TapeLab/internal/calc/damage"
	"TapeLab/internal/calc/properties"
	"TapeLab/internal/tape"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Config  tape.Config `json:"config"`
}

type Handler struct{}

// Generate renders a one-page PDF datasheet for a tape configuration:
// computed properties, aging breakdown, and surface-damage risk.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Tape Property Datasheet"
	}

	props, err := properties.Calculate(input.Config)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	risk, err := damage.Calculate(input.Config)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Configuration")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Backing: %s   Adhesive: %s   Thickness: %.0f um",
		input.Config.Backing, input.Config.Adhesive, input.Config.ThicknessUm))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Surface: %s   Environment: %s   Exposure: %.0f days",
		input.Config.Surface, input.Config.Environment, input.Config.TimeImpactDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Calculated properties")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Peel adhesion: %.2f N/cm", props.PeelAdhesionNcm))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Hold strength: %.2f N/cm2", props.HoldStrengthNcm2))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Stretch: %.1f %%", props.StretchPct))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total thickness: %.0f um   Temperature factor: %.2f",
		props.TotalThicknessUm, props.TemperatureFactor))
	pdf.Ln(6)
	if props.Aging != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Aging: peel retention %.3f, hold retention %.3f, stretch change %.3f",
			props.Aging.PeelRetention, props.Aging.HoldRetention, props.Aging.StretchChange))
		pdf.Ln(6)
		tint := aging.YellowTint(input.Config)
		pdf.Cell(0, 6, fmt.Sprintf("Visual aging: UV %.2f, residue %.2f, combined %.2f",
			tint.UV, tint.Residue, tint.Combined))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Surface damage risk: %s", risk.Risk))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, risk.Notes, "", "L", false)
	pdf.Ln(4)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"datasheet.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
