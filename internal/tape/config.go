package tape

// Config is the single input record threaded through every calculator.
// Material fields are lookup keys into the reference tables; unknown keys
// resolve to documented fallbacks instead of failing.
type Config struct {
	Backing     string  `json:"backing"`
	Adhesive    string  `json:"adhesive"`
	Surface     string  `json:"surface"`
	Environment string  `json:"environment"`
	ThicknessUm float64 `json:"thickness_um"`

	// Elapsed exposure time. Zero or absent means unaged.
	TimeImpactDays float64 `json:"time_impact_days,omitempty"`

	// Tape dimensions for damage-risk area calculations.
	WidthMm  float64 `json:"width_mm,omitempty"`
	HeightMm float64 `json:"height_mm,omitempty"`

	// Second backing layer for composite mode.
	SecondBacking string `json:"second_backing,omitempty"`
}
