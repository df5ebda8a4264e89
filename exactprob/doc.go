// Package exactprob computes reference transition probabilities and
// weights by brute-force enumeration at high precision, independent of
// the float64 closed-form formulas in package arxop. It exists purely
// to seed the property tests in arxop's own test files (P3, P6) and
// is never imported by the production search path.
package exactprob
