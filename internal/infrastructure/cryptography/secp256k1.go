package cryptography

import (
	"crypto/ecdsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// crypto/x509 only knows the NIST curves, so secp256k1 keys are wrapped by hand.

type pkcs8PrivateKey struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// ecPrivateKey is the SEC 1 ECPrivateKey structure
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

const secp256k1ScalarSize = 32

func secp256k1AlgorithmIdentifier() (pkix.AlgorithmIdentifier, error) {
	params, err := asn1.Marshal(oidNamedCurveSecp256k1)
	if err != nil {
		return pkix.AlgorithmIdentifier{}, fmt.Errorf("failed to marshal curve OID: %w", err)
	}
	return pkix.AlgorithmIdentifier{
		Algorithm:  oidPublicKeyECDSA,
		Parameters: asn1.RawValue{FullBytes: params},
	}, nil
}

func toSecp256k1PrivateKey(priv *ecdsa.PrivateKey) (*secp256k1.PrivateKey, error) {
	if priv.D == nil || priv.D.Sign() <= 0 || priv.D.BitLen() > 8*secp256k1ScalarSize {
		return nil, errors.New("invalid secp256k1 private scalar")
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(priv.D.FillBytes(make([]byte, secp256k1ScalarSize))); overflow || scalar.IsZero() {
		return nil, errors.New("secp256k1 private scalar out of range")
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

func toSecp256k1PublicKey(pub *ecdsa.PublicKey) (*secp256k1.PublicKey, error) {
	if pub.X == nil || pub.Y == nil || pub.X.BitLen() > 256 || pub.Y.BitLen() > 256 {
		return nil, errors.New("invalid secp256k1 public point")
	}
	point := make([]byte, 1+2*secp256k1ScalarSize)
	point[0] = 0x04
	pub.X.FillBytes(point[1 : 1+secp256k1ScalarSize])
	pub.Y.FillBytes(point[1+secp256k1ScalarSize:])
	key, err := secp256k1.ParsePubKey(point)
	if err != nil {
		return nil, fmt.Errorf("invalid secp256k1 public point: %w", err)
	}
	return key, nil
}

func marshalSecp256k1PKCS8(priv *ecdsa.PrivateKey) ([]byte, error) {
	key, err := toSecp256k1PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	scalar := key.Key.Bytes()
	point := key.PubKey().SerializeUncompressed()

	inner, err := asn1.Marshal(ecPrivateKey{
		Version:    1,
		PrivateKey: scalar[:],
		PublicKey:  asn1.BitString{Bytes: point, BitLength: 8 * len(point)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal EC private key: %w", err)
	}

	algo, err := secp256k1AlgorithmIdentifier()
	if err != nil {
		return nil, err
	}
	der, err := asn1.Marshal(pkcs8PrivateKey{Version: 0, Algo: algo, PrivateKey: inner})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal PKCS#8 private key: %w", err)
	}
	return der, nil
}

func marshalSecp256k1PKIX(pub *ecdsa.PublicKey) ([]byte, error) {
	key, err := toSecp256k1PublicKey(pub)
	if err != nil {
		return nil, err
	}
	point := key.SerializeUncompressed()

	algo, err := secp256k1AlgorithmIdentifier()
	if err != nil {
		return nil, err
	}
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: algo,
		PublicKey: asn1.BitString{Bytes: point, BitLength: 8 * len(point)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return der, nil
}

func checkSecp256k1Algorithm(algo pkix.AlgorithmIdentifier) error {
	if !algo.Algorithm.Equal(oidPublicKeyECDSA) {
		return fmt.Errorf("unexpected key algorithm %s", algo.Algorithm)
	}
	var curve asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(algo.Parameters.FullBytes, &curve); err != nil {
		return fmt.Errorf("invalid curve parameters: %w", err)
	}
	if !curve.Equal(oidNamedCurveSecp256k1) {
		return fmt.Errorf("unsupported named curve %s", curve)
	}
	return nil
}

func parseSecp256k1PKCS8(der []byte) (*ecdsa.PrivateKey, error) {
	var info pkcs8PrivateKey
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil {
		return nil, fmt.Errorf("invalid PKCS#8 structure: %w", err)
	}
	if len(rest) > 0 {
		return nil, errors.New("trailing data after PKCS#8 structure")
	}
	if err := checkSecp256k1Algorithm(info.Algo); err != nil {
		return nil, err
	}
	return parseSecp256k1ECPrivateKey(info.PrivateKey)
}

func parseSecp256k1ECPrivateKey(der []byte) (*ecdsa.PrivateKey, error) {
	var key ecPrivateKey
	if _, err := asn1.Unmarshal(der, &key); err != nil {
		return nil, fmt.Errorf("invalid EC private key structure: %w", err)
	}
	if key.Version != 1 {
		return nil, fmt.Errorf("unknown EC private key version %d", key.Version)
	}
	if len(key.NamedCurveOID) > 0 && !key.NamedCurveOID.Equal(oidNamedCurveSecp256k1) {
		return nil, fmt.Errorf("unsupported named curve %s", key.NamedCurveOID)
	}
	if len(key.PrivateKey) == 0 || len(key.PrivateKey) > secp256k1ScalarSize {
		return nil, errors.New("invalid secp256k1 private scalar length")
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key.PrivateKey); overflow || scalar.IsZero() {
		return nil, errors.New("secp256k1 private scalar out of range")
	}
	return secp256k1.NewPrivateKey(&scalar).ToECDSA(), nil
}

func parseSecp256k1PKIX(der []byte) (*ecdsa.PublicKey, error) {
	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil {
		return nil, fmt.Errorf("invalid public key structure: %w", err)
	}
	if len(rest) > 0 {
		return nil, errors.New("trailing data after public key structure")
	}
	if err := checkSecp256k1Algorithm(info.Algorithm); err != nil {
		return nil, err
	}
	key, err := secp256k1.ParsePubKey(info.PublicKey.RightAlign())
	if err != nil {
		return nil, fmt.Errorf("invalid secp256k1 public point: %w", err)
	}
	return key.ToECDSA(), nil
}
