package frames

import "math"

// BodyToInertial builds the body-to-inertial direction-cosine matrix for
// the 3-2-1 Euler sequence (yaw psi, then pitch theta, then roll phi).
// Its transpose converts inertial vectors to the body frame.
func BodyToInertial(phi, theta, psi float64) Mat3 {
	sphi, cphi := math.Sincos(phi)
	sth, cth := math.Sincos(theta)
	spsi, cpsi := math.Sincos(psi)

	return Mat3{
		{cpsi * cth, cpsi*sth*sphi - spsi*cphi, cpsi*sth*cphi + spsi*sphi},
		{spsi * cth, spsi*sth*sphi + cpsi*cphi, spsi*sth*cphi - cpsi*sphi},
		{-sth, cth * sphi, cth * cphi},
	}
}

// InertialToBody is the transpose of BodyToInertial.
func InertialToBody(phi, theta, psi float64) Mat3 {
	return BodyToInertial(phi, theta, psi).Transpose()
}

// EulerRates converts body angular rates (p, q, r) to Euler angle rates
// (phidot, thetadot, psidot) via the differential kinematic equation.
// Singular at theta = ±pi/2; the flight envelopes modeled stay clear of
// vertical, so no guard is applied.
func EulerRates(phi, theta, p, q, r float64) (phidot, thetadot, psidot float64) {
	sphi, cphi := math.Sincos(phi)
	tth := math.Tan(theta)
	cth := math.Cos(theta)

	phidot = p + (q*sphi+r*cphi)*tth
	thetadot = q*cphi - r*sphi
	psidot = (q*sphi + r*cphi) / cth
	return
}

// BodyRates is the inverse of EulerRates: Euler angle rates to body rates.
func BodyRates(phi, theta, phidot, thetadot, psidot float64) (p, q, r float64) {
	sphi, cphi := math.Sincos(phi)
	sth, cth := math.Sincos(theta)

	p = phidot - psidot*sth
	q = thetadot*cphi + psidot*cth*sphi
	r = -thetadot*sphi + psidot*cth*cphi
	return
}

// GravityBody projects gravity into the body frame for the given attitude.
func GravityBody(phi, theta, g float64) Vec3 {
	sphi, cphi := math.Sincos(phi)
	sth, cth := math.Sincos(theta)
	return Vec3{-g * sth, g * sphi * cth, g * cphi * cth}
}
