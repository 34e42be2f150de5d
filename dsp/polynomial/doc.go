// Package polynomial provides root finding, polynomial expansion from roots,
// and Horner evaluation for real and complex polynomials.
//
// Coefficients are always ordered highest power first, matching the usual
// transfer-function convention: p[0]*x^n + p[1]*x^(n-1) + ... + p[n].
//
// Root finding builds the companion matrix of the monic-normalized polynomial
// and computes its eigenvalues with gonum's general real eigenvalue solver.
// A convergence failure of the solver is reported, never approximated.
package polynomial
