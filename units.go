package tanktemp

// Offset between the Fahrenheit and Rankine scales.
const rankineOffset = 459.67

// Gallons per 42-gallon oil barrel.
const galPerBbl = 42.0

// FToR converts a temperature from degrees Fahrenheit to degrees Rankine.
func FToR(t float64) float64 {
	return t + rankineOffset
}

// RToF converts a temperature from degrees Rankine to degrees Fahrenheit.
func RToF(t float64) float64 {
	return t - rankineOffset
}

// GalToBbl converts a volume from US gallons to oil barrels.
func GalToBbl(gal float64) float64 {
	return gal / galPerBbl
}

// BblToGal converts a volume from oil barrels to US gallons.
func BblToGal(bbl float64) float64 {
	return bbl * galPerBbl
}
