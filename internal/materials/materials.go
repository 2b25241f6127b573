package materials

// Reference tables for PSA tape constructions. Values were tuned against
// catalog datasheets of named tape products and industry-typical ranges;
// they are estimator inputs, not laboratory data.
//
// All tables are initialized at load and never mutated afterwards, so
// concurrent lookups need no locking.

type UVResistance string

const (
	UVPoor      UVResistance = "poor"
	UVFair      UVResistance = "fair"
	UVGood      UVResistance = "good"
	UVExcellent UVResistance = "excellent"
)

type SurfaceEnergy string

const (
	EnergyLow    SurfaceEnergy = "low"
	EnergyMedium SurfaceEnergy = "medium"
	EnergyHigh   SurfaceEnergy = "high"
)

// Peel-adhesion units as they appear on supplier datasheets.
const (
	UnitCNPerCm   = "cN/cm"
	UnitNPer100mm = "N/100mm"
)

type Backing struct {
	StandardThicknessUm float64      `json:"standard_thickness_um"`
	TensileStrengthNcm  float64      `json:"tensile_strength_ncm"`
	ElongationPct       float64      `json:"elongation_pct"`
	TempMinC            float64      `json:"temp_min_c"`
	TempMaxC            float64      `json:"temp_max_c"`
	UVResistance        UVResistance `json:"uv_resistance"`
}

type Adhesive struct {
	StandardThicknessUm float64      `json:"standard_thickness_um"`
	BasePeel            float64      `json:"base_peel"`
	PeelUnit            string       `json:"peel_unit"`
	Tack                string       `json:"tack"`
	TempMinC            float64      `json:"temp_min_c"`
	TempMaxC            float64      `json:"temp_max_c"`
	UVResistance        UVResistance `json:"uv_resistance"`

	// Qualitative wet-out notes by substrate energy class, used by the
	// recommendation tool and shown on datasheets.
	Affinity map[SurfaceEnergy]string `json:"affinity"`
}

// BasePeelNcm normalizes the datasheet peel value to N/cm.
func (a Adhesive) BasePeelNcm() float64 {
	if a.PeelUnit == UnitNPer100mm {
		return a.BasePeel / 10
	}
	return a.BasePeel / 100 // cN/cm
}

type Surface struct {
	Energy             SurfaceEnergy `json:"energy"`
	Texture            string        `json:"texture"`
	AdhesionMultiplier float64       `json:"adhesion_multiplier"`

	// Residue absorption factor: ~0.1 for non-porous metal/glass,
	// up to ~0.9 for absorbent papers.
	Absorption float64 `json:"absorption"`
}

type Environment struct {
	TempMinC           float64 `json:"temp_min_c"`
	TempMaxC           float64 `json:"temp_max_c"`
	TempTypicalC       float64 `json:"temp_typical_c"`
	HumidityMinPct     float64 `json:"humidity_min_pct"`
	HumidityMaxPct     float64 `json:"humidity_max_pct"`
	HumidityTypicalPct float64 `json:"humidity_typical_pct"`
	AdhesionMultiplier float64 `json:"adhesion_multiplier"`
	AgingFactor        float64 `json:"aging_factor"`
	UVExposure         float64 `json:"uv_exposure"`
}

// RuptureStrength is the force per unit width (N/cm) a surface withstands
// before tearing. Surfaces strong enough that the tape bond always fails
// first (metals, glass) have no entry.
type RuptureStrength struct {
	MinNcm     float64 `json:"min_ncm"`
	MaxNcm     float64 `json:"max_ncm"`
	TypicalNcm float64 `json:"typical_ncm"`
}

var Backings = map[string]Backing{
	"PVC":   {StandardThicknessUm: 50, TensileStrengthNcm: 40, ElongationPct: 180, TempMinC: -5, TempMaxC: 70, UVResistance: UVFair},
	"PET":   {StandardThicknessUm: 25, TensileStrengthNcm: 55, ElongationPct: 100, TempMinC: -40, TempMaxC: 130, UVResistance: UVGood},
	"PP":    {StandardThicknessUm: 30, TensileStrengthNcm: 35, ElongationPct: 150, TempMinC: -10, TempMaxC: 90, UVResistance: UVPoor},
	"BOPP":  {StandardThicknessUm: 28, TensileStrengthNcm: 45, ElongationPct: 160, TempMinC: 0, TempMaxC: 80, UVResistance: UVPoor},
	"Paper": {StandardThicknessUm: 90, TensileStrengthNcm: 25, ElongationPct: 4, TempMinC: 0, TempMaxC: 100, UVResistance: UVFair},
	"Cloth": {StandardThicknessUm: 250, TensileStrengthNcm: 80, ElongationPct: 12, TempMinC: -10, TempMaxC: 95, UVResistance: UVFair},
	"Foam":  {StandardThicknessUm: 800, TensileStrengthNcm: 10, ElongationPct: 200, TempMinC: -20, TempMaxC: 80, UVResistance: UVPoor},
}

var Adhesives = map[string]Adhesive{
	"Acrylic": {
		StandardThicknessUm: 25,
		BasePeel:            260, // cN/cm, catalog reference 2.6 N/cm on steel
		PeelUnit:            UnitCNPerCm,
		Tack:                "medium",
		TempMinC:            -20,
		TempMaxC:            100,
		UVResistance:        UVExcellent,
		Affinity: map[SurfaceEnergy]string{
			EnergyHigh:   "excellent wet-out",
			EnergyMedium: "good wet-out",
			EnergyLow:    "poor without primer",
		},
	},
	"Rubber": {
		StandardThicknessUm: 20,
		BasePeel:            28, // N/100mm
		PeelUnit:            UnitNPer100mm,
		Tack:                "high",
		TempMinC:            0,
		TempMaxC:            60,
		UVResistance:        UVPoor,
		Affinity: map[SurfaceEnergy]string{
			EnergyHigh:   "very good wet-out",
			EnergyMedium: "very good wet-out",
			EnergyLow:    "fair, high initial tack helps",
		},
	},
	"Silicone": {
		StandardThicknessUm: 40,
		BasePeel:            120, // cN/cm
		PeelUnit:            UnitCNPerCm,
		Tack:                "low",
		TempMinC:            -60,
		TempMaxC:            260,
		UVResistance:        UVExcellent,
		Affinity: map[SurfaceEnergy]string{
			EnergyHigh:   "good wet-out",
			EnergyMedium: "good wet-out",
			EnergyLow:    "usable, only adhesive that wets silicones",
		},
	},
}

var Surfaces = map[string]Surface{
	"Steel":       {Energy: EnergyHigh, Texture: "smooth", AdhesionMultiplier: 1.0, Absorption: 0.1},
	"Glass":       {Energy: EnergyHigh, Texture: "smooth", AdhesionMultiplier: 1.05, Absorption: 0.05},
	"Aluminum":    {Energy: EnergyHigh, Texture: "smooth", AdhesionMultiplier: 0.95, Absorption: 0.1},
	"Plastic Bag": {Energy: EnergyLow, Texture: "film", AdhesionMultiplier: 0.6, Absorption: 0.15},
	"Wall Paint":  {Energy: EnergyMedium, Texture: "matte", AdhesionMultiplier: 0.85, Absorption: 0.5},
	"Wallpaper":   {Energy: EnergyMedium, Texture: "textured", AdhesionMultiplier: 0.75, Absorption: 0.7},
	"Wood":        {Energy: EnergyMedium, Texture: "grained", AdhesionMultiplier: 0.8, Absorption: 0.6},
	"Cardboard":   {Energy: EnergyMedium, Texture: "rough", AdhesionMultiplier: 0.75, Absorption: 0.8},
	"Paper":       {Energy: EnergyMedium, Texture: "fibrous", AdhesionMultiplier: 0.7, Absorption: 0.9},
}

var Environments = map[string]Environment{
	"Dry":      {TempMinC: 10, TempMaxC: 30, TempTypicalC: 20, HumidityMinPct: 20, HumidityMaxPct: 50, HumidityTypicalPct: 35, AdhesionMultiplier: 1.0, AgingFactor: 1.0, UVExposure: 1.0},
	"Humid":    {TempMinC: 15, TempMaxC: 30, TempTypicalC: 24, HumidityMinPct: 60, HumidityMaxPct: 90, HumidityTypicalPct: 75, AdhesionMultiplier: 0.9, AgingFactor: 1.3, UVExposure: 0.9},
	"Tropical": {TempMinC: 24, TempMaxC: 35, TempTypicalC: 30, HumidityMinPct: 70, HumidityMaxPct: 95, HumidityTypicalPct: 85, AdhesionMultiplier: 0.85, AgingFactor: 1.6, UVExposure: 1.5},
	"Semiarid": {TempMinC: 10, TempMaxC: 35, TempTypicalC: 25, HumidityMinPct: 20, HumidityMaxPct: 40, HumidityTypicalPct: 30, AdhesionMultiplier: 0.95, AgingFactor: 1.1, UVExposure: 1.2},
	"Arid":     {TempMinC: 15, TempMaxC: 40, TempTypicalC: 32, HumidityMinPct: 5, HumidityMaxPct: 25, HumidityTypicalPct: 15, AdhesionMultiplier: 0.9, AgingFactor: 1.2, UVExposure: 1.4},
}

// Ruptures lists tear strengths for fragile surfaces only. Absence means
// the adhesive bond always fails before the surface does.
var Ruptures = map[string]RuptureStrength{
	"Plastic Bag": {MinNcm: 2, MaxNcm: 6, TypicalNcm: 4},
	"Wall Paint":  {MinNcm: 1.5, MaxNcm: 4, TypicalNcm: 2.5},
	"Wallpaper":   {MinNcm: 1, MaxNcm: 3, TypicalNcm: 2},
	"Paper":       {MinNcm: 0.8, MaxNcm: 2, TypicalNcm: 1.2},
	"Cardboard":   {MinNcm: 3, MaxNcm: 8, TypicalNcm: 5},
}
