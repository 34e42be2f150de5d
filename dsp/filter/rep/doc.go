// Package rep defines the three interchangeable filter representations and
// lossless (up to rounding) conversions between them:
//
//   - ZPK: zeros, poles, and a scalar gain
//   - BA: transfer-function numerator/denominator coefficients
//   - SOS: a cascade of second-order sections
//
// Design-time representations are immutable value objects produced by pure
// functions; they carry no execution state. Conversions route through the
// polynomial package for root finding and expansion.
package rep
