package app

import (
	"github.com/rexmax1018/CryptoSuite48/internal/domain/cryptoalg"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// cryptoService implements keys.CryptoService by dispatching on the algorithm selector
type cryptoService struct {
	aesProcessor   cryptoalg.AESProcessor
	rsaProcessor   cryptoalg.RSAProcessor
	ecdsaProcessor cryptoalg.ECDSAProcessor
	logger         logger.Logger
}

// NewCryptoService creates a new cryptoService instance
func NewCryptoService(
	aesProcessor cryptoalg.AESProcessor,
	rsaProcessor cryptoalg.RSAProcessor,
	ecdsaProcessor cryptoalg.ECDSAProcessor,
	logger logger.Logger,
) (keys.CryptoService, error) {
	return &cryptoService{
		aesProcessor:   aesProcessor,
		rsaProcessor:   rsaProcessor,
		ecdsaProcessor: ecdsaProcessor,
		logger:         logger,
	}, nil
}

func unsupported(operation string, algorithm keys.Algorithm, key keys.KeyModel) error {
	return keys.NewUnsupportedError(operation, algorithm, keys.ModelName(key))
}

// symmetricKey returns key as a validated symmetric model when algorithm is AES
func symmetricKey(operation string, algorithm keys.Algorithm, key keys.KeyModel) (*keys.SymmetricKeyModel, error) {
	model, ok := key.(*keys.SymmetricKeyModel)
	if !ok || model == nil {
		return nil, unsupported(operation, algorithm, key)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *cryptoService) rsaMaterial(operation string, algorithm keys.Algorithm, key keys.KeyModel) (cryptoalg.RSAKeyMaterial, error) {
	model, ok := key.(*keys.RsaKeyModel)
	if !ok || model == nil {
		return nil, unsupported(operation, algorithm, key)
	}
	return s.rsaProcessor.ParseKeyMaterial(model.PrivateKey, model.PublicKey)
}

func (s *cryptoService) ecMaterial(operation string, algorithm keys.Algorithm, key keys.KeyModel) (cryptoalg.ECKeyMaterial, error) {
	model, ok := key.(*keys.EccKeyModel)
	if !ok || model == nil {
		return nil, unsupported(operation, algorithm, key)
	}
	return s.ecdsaProcessor.ParseKeyMaterial(model.PrivateKey, model.PublicKey, model.Curve)
}

// Encrypt uses AES-CBC for AES and a single PKCS#1 v1.5 block for RSA
func (s *cryptoService) Encrypt(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	const operation = "encrypt"
	s.logger.Info("Encrypting ", len(data), " bytes with ", algorithm, " using ", keys.ModelName(key))

	switch algorithm {
	case keys.AlgorithmAES:
		model, err := symmetricKey(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		return s.aesProcessor.Encrypt(data, model.Key, model.IV)
	case keys.AlgorithmRSA:
		material, err := s.rsaMaterial(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		return s.rsaProcessor.Encrypt(data, material.PublicKey())
	}
	return nil, unsupported(operation, algorithm, key)
}

// Decrypt reverses Encrypt. RSA requires the private key.
func (s *cryptoService) Decrypt(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	const operation = "decrypt"
	s.logger.Info("Decrypting ", len(data), " bytes with ", algorithm, " using ", keys.ModelName(key))

	switch algorithm {
	case keys.AlgorithmAES:
		model, err := symmetricKey(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		return s.aesProcessor.Decrypt(data, model.Key, model.IV)
	case keys.AlgorithmRSA:
		material, err := s.rsaMaterial(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		pair, ok := material.(*cryptoalg.RSAKeyPair)
		if !ok {
			return nil, keys.MalformedKeyf("RSA decryption requires a private key")
		}
		return s.rsaProcessor.Decrypt(data, pair.Private)
	}
	return nil, unsupported(operation, algorithm, key)
}

// Sign hashes data with SHA-256 and signs it with RSA PKCS#1 v1.5 or ECDSA
func (s *cryptoService) Sign(data []byte, algorithm keys.Algorithm, key keys.KeyModel) ([]byte, error) {
	const operation = "sign"
	s.logger.Info("Signing ", len(data), " bytes with ", algorithm, " using ", keys.ModelName(key))

	switch algorithm {
	case keys.AlgorithmRSA:
		material, err := s.rsaMaterial(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		pair, ok := material.(*cryptoalg.RSAKeyPair)
		if !ok {
			return nil, keys.MalformedKeyf("RSA signing requires a private key")
		}
		return s.rsaProcessor.Sign(data, pair.Private)
	case keys.AlgorithmECC:
		material, err := s.ecMaterial(operation, algorithm, key)
		if err != nil {
			return nil, err
		}
		pair, ok := material.(*cryptoalg.ECKeyPair)
		if !ok {
			return nil, keys.MalformedKeyf("ECC signing requires a private key")
		}
		return s.ecdsaProcessor.Sign(data, pair.Curve, pair.Private)
	}
	return nil, unsupported(operation, algorithm, key)
}

// Verify reports false without an error when signature does not match data
func (s *cryptoService) Verify(data, signature []byte, algorithm keys.Algorithm, key keys.KeyModel) (bool, error) {
	const operation = "verify"
	s.logger.Info("Verifying ", len(signature), " byte signature with ", algorithm, " using ", keys.ModelName(key))

	switch algorithm {
	case keys.AlgorithmRSA:
		material, err := s.rsaMaterial(operation, algorithm, key)
		if err != nil {
			return false, err
		}
		return s.rsaProcessor.Verify(data, signature, material.PublicKey())
	case keys.AlgorithmECC:
		material, err := s.ecMaterial(operation, algorithm, key)
		if err != nil {
			return false, err
		}
		return s.ecdsaProcessor.Verify(data, signature, material.CurveName(), material.PublicKey())
	}
	return false, unsupported(operation, algorithm, key)
}
