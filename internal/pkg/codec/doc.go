// Package codec provides the boundary encodings used around cryptographic operations:
// Base64 (standard and URL-safe), hexadecimal, PKCS#7 block padding and text encodings.
package codec
