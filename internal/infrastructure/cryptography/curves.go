package cryptography

import (
	"crypto/elliptic"
	"encoding/asn1"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

var (
	oidPublicKeyECDSA      = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidNamedCurveP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveP384      = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidNamedCurveP521      = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
	oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// CurveDomain holds the domain parameters a curve name resolves to.
// All four supported curves have prime order, so Cofactor is always 1.
type CurveDomain struct {
	Name     keys.EccCurve
	Curve    elliptic.Curve
	OID      asn1.ObjectIdentifier
	Cofactor int
}

// Params returns field prime, order, generator and bit size
func (d *CurveDomain) Params() *elliptic.CurveParams {
	return d.Curve.Params()
}

// ByteSize is the length of a field element in bytes
func (d *CurveDomain) ByteSize() int {
	return (d.Params().BitSize + 7) / 8
}

// ResolveCurve maps a curve name onto its domain parameters. Unknown names are never defaulted.
func ResolveCurve(name keys.EccCurve) (*CurveDomain, error) {
	switch name {
	case keys.CurveNistP256:
		return &CurveDomain{Name: name, Curve: elliptic.P256(), OID: oidNamedCurveP256, Cofactor: 1}, nil
	case keys.CurveNistP384:
		return &CurveDomain{Name: name, Curve: elliptic.P384(), OID: oidNamedCurveP384, Cofactor: 1}, nil
	case keys.CurveNistP521:
		return &CurveDomain{Name: name, Curve: elliptic.P521(), OID: oidNamedCurveP521, Cofactor: 1}, nil
	case keys.CurveSecp256k1:
		return &CurveDomain{Name: name, Curve: secp256k1.S256(), OID: oidNamedCurveSecp256k1, Cofactor: 1}, nil
	default:
		return nil, fmt.Errorf("%w: unknown elliptic curve %q", keys.ErrUnsupported, string(name))
	}
}

// curveNameOf identifies a curve by comparing its prime, order and base point
func curveNameOf(curve elliptic.Curve) (keys.EccCurve, error) {
	if curve == nil {
		return "", keys.MalformedKeyf("key has no curve")
	}
	params := curve.Params()
	for _, name := range keys.EccCurves {
		domain, err := ResolveCurve(name)
		if err != nil {
			return "", err
		}
		known := domain.Params()
		if params.P.Cmp(known.P) == 0 && params.N.Cmp(known.N) == 0 && params.Gx.Cmp(known.Gx) == 0 {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized elliptic curve %s", keys.ErrUnsupported, params.Name)
}
