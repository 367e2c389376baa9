package keys

import (
	"encoding/json"
	"fmt"

	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
)

// Algorithm selects the algorithm family an operation targets.
type Algorithm string

const (
	// AlgorithmAES is the symmetric block cipher family
	AlgorithmAES Algorithm = "AES"
	// AlgorithmRSA is the RSA public-key family
	AlgorithmRSA Algorithm = "RSA"
	// AlgorithmECC is the elliptic-curve family (signatures only)
	AlgorithmECC Algorithm = "ECC"
)

// Algorithms lists the supported algorithm selectors in declaration order.
var Algorithms = []Algorithm{AlgorithmAES, AlgorithmRSA, AlgorithmECC}

// ParseAlgorithm maps a selector name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrUnsupported, name)
}

// Directory is the storage subdirectory holding key files of the algorithm.
func (a Algorithm) Directory() string {
	return string(a)
}

// EccCurve names an elliptic curve an EccKeyModel is bound to.
type EccCurve string

const (
	// CurveNistP256 is NIST P-256 (secp256r1)
	CurveNistP256 EccCurve = "NistP256"
	// CurveNistP384 is NIST P-384 (secp384r1)
	CurveNistP384 EccCurve = "NistP384"
	// CurveNistP521 is NIST P-521 (secp521r1)
	CurveNistP521 EccCurve = "NistP521"
	// CurveSecp256k1 is the SEC 2 Koblitz curve secp256k1
	CurveSecp256k1 EccCurve = "Secp256k1"
)

// EccCurves lists the supported curves. The index of a curve is its legacy numeric value.
var EccCurves = []EccCurve{CurveNistP256, CurveNistP384, CurveNistP521, CurveSecp256k1}

// ParseEccCurve maps a curve name onto an EccCurve.
func ParseEccCurve(name string) (EccCurve, error) {
	for _, curve := range EccCurves {
		if string(curve) == name {
			return curve, nil
		}
	}
	return "", fmt.Errorf("%w: unknown elliptic curve %q", ErrUnsupported, name)
}

// UnmarshalJSON accepts the curve name or its legacy numeric value.
func (c *EccCurve) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		curve, err := ParseEccCurve(name)
		if err != nil {
			return err
		}
		*c = curve
		return nil
	}

	var index int
	if err := json.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("curve must be a name or a number: %w", err)
	}
	if index < 0 || index >= len(EccCurves) {
		return fmt.Errorf("%w: unknown elliptic curve %d", ErrUnsupported, index)
	}
	*c = EccCurves[index]
	return nil
}

// TextEncoding selects how text is turned into bytes before an operation.
type TextEncoding = codec.TextEncoding

const (
	TextEncodingUTF8  = codec.TextEncodingUTF8
	TextEncodingUTF16 = codec.TextEncodingUTF16
	TextEncodingUTF32 = codec.TextEncodingUTF32
	TextEncodingASCII = codec.TextEncodingASCII
)

// AES key sizes in bytes
const (
	AESKeySize128 = 16
	AESKeySize192 = 24
	AESKeySize256 = 32
)

// AESBlockSize is the AES block and IV length in bytes
const AESBlockSize = 16
