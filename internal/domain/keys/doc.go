// Package keys defines the key models of the three supported algorithm families (AES, RSA and ECC),
// the contracts of the generators, loaders and services built around them and the error taxonomy
// shared by every component that handles key material.
package keys
