package vehicle

import "math"

// Atmosphere is a simple density model: sea-level density with an
// optional exponential falloff. No compressibility or Reynolds effects.
type Atmosphere struct {
	Rho0        float64 // kg/m^3 at the NED origin
	ScaleHeight float64 // meters; 0 disables the falloff
}

// ISA returns the standard sea-level atmosphere with an 8.5 km density
// scale height.
func ISA() Atmosphere {
	return Atmosphere{Rho0: 1.225, ScaleHeight: 8500}
}

// ConstantDensity returns an atmosphere with uniform density rho.
func ConstantDensity(rho float64) Atmosphere {
	return Atmosphere{Rho0: rho}
}

// Density returns air density at the given altitude above the origin.
func (a Atmosphere) Density(altitude float64) float64 {
	if a.ScaleHeight <= 0 {
		return a.Rho0
	}
	return a.Rho0 * math.Exp(-altitude/a.ScaleHeight)
}
