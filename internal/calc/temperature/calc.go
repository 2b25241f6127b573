package temperature

// Heat-tolerance ceiling per adhesive, °C.
var heatLimit = map[string]float64{
	"Acrylic":  100,
	"Rubber":   60,
	"Silicone": 260,
}

const defaultHeatLimit = 80

// Multiplier returns the performance factor applied to final peel and hold.
// Full performance inside the 15-25 °C band; 3%/°C penalty below, floored
// at 0.4; above, the penalty grows linearly to 50% loss at the adhesive's
// heat limit, floored at 0.3.
func Multiplier(tempC float64, adhesive string) float64 {
	switch {
	case tempC < 15:
		m := 1 - 0.03*(15-tempC)
		if m < 0.4 {
			return 0.4
		}
		return m
	case tempC <= 25:
		return 1
	default:
		limit, ok := heatLimit[adhesive]
		if !ok {
			limit = defaultHeatLimit
		}
		if limit <= 25 {
			return 0.3
		}
		m := 1 - 0.5*(tempC-25)/(limit-25)
		if m < 0.3 {
			return 0.3
		}
		return m
	}
}
