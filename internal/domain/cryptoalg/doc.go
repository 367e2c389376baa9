// Package cryptoalg defines the per-algorithm processor contracts that wrap the cryptographic primitives
// and the key material outcomes produced when PEM encoded keys are parsed.
package cryptoalg
