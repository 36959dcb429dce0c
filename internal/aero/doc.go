// Package aero implements the full-envelope coefficient model: a
// Kirchhoff-style blend of an attached-flow thin-airfoil estimate and a
// flat-plate estimate, weighted by a sigmoid separation fraction f(alpha).
//
// The blend is closed-form and differentiable over the whole range
// alpha in [-180, 180] and beta in [-90, 90] degrees, replacing discrete
// lookup-table aerodynamics. [Blend] produces the complete coefficient
// set for one surface; the sub-model functions are exported for tests
// and analysis.
//
// All functions are total: every real input yields a finite output, with
// the sigmoid exponent clamped against overflow.
package aero
