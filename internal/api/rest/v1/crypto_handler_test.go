//go:build unit
// +build unit

package v1

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rexmax1018/CryptoSuite48/internal/app"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCryptoHandler(t *testing.T, cryptoService *MockCryptoService, keyService *MockCryptoKeyService) CryptoHandler {
	t.Helper()
	return NewCryptoHandler(cryptoService, keyService, config.DefaultCryptoSettings(), testutil.SetupTestLogger(t))
}

func TestCryptoHandler_Encrypt(t *testing.T) {
	cryptoService := new(MockCryptoService)
	keyService := new(MockCryptoKeyService)
	handler := newTestCryptoHandler(t, cryptoService, keyService)

	model := &keys.SymmetricKeyModel{Key: make([]byte, 16), IV: make([]byte, 16)}
	keyService.On("LoadFromBase64", keys.AlgorithmAES, "a2V5").Return(model, nil)
	cryptoService.On("Encrypt", []byte("hello"), keys.AlgorithmAES, model).Return([]byte{0xfb, 0xff}, nil)

	c, w := newJSONContext("POST", "/encrypt", `{"algorithm":"AES","key":"a2V5","text":"hello"}`)
	handler.Encrypt(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response DataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "-_8", response.Data)
	cryptoService.AssertExpectations(t)
	keyService.AssertExpectations(t)
}

func TestCryptoHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Unsupported", keys.NewUnsupportedError("encrypt", keys.AlgorithmECC, "EccKeyModel"), http.StatusBadRequest},
		{"MalformedKey", keys.MalformedKeyf("bad pem"), http.StatusBadRequest},
		{"MalformedEncoding", fmt.Errorf("%w: odd", keys.ErrMalformedEncoding), http.StatusBadRequest},
		{"MessageTooLong", fmt.Errorf("failed to encrypt data: %w", rsa.ErrMessageTooLong), http.StatusBadRequest},
		{"DecryptionError", fmt.Errorf("failed to decrypt data: %w", rsa.ErrDecryption), http.StatusBadRequest},
		{"Internal", fmt.Errorf("entropy source failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cryptoService := new(MockCryptoService)
			keyService := new(MockCryptoKeyService)
			handler := newTestCryptoHandler(t, cryptoService, keyService)

			model := &keys.EccKeyModel{}
			keyService.On("LoadFromBase64", keys.AlgorithmECC, "a2V5").Return(model, nil)
			cryptoService.On("Encrypt", mock.Anything, keys.AlgorithmECC, model).Return(nil, tt.err)

			c, w := newJSONContext("POST", "/encrypt", `{"algorithm":"ECC","key":"a2V5","data":"AQID"}`)
			handler.Encrypt(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCryptoHandler_BadRequests(t *testing.T) {
	t.Run("InvalidPayloadEncoding", func(t *testing.T) {
		keyService := new(MockCryptoKeyService)
		cryptoService := new(MockCryptoService)
		handler := newTestCryptoHandler(t, cryptoService, keyService)
		keyService.On("LoadFromBase64", keys.AlgorithmAES, "a2V5").Return(&keys.SymmetricKeyModel{}, nil)

		c, w := newJSONContext("POST", "/decrypt", `{"algorithm":"AES","key":"a2V5","data":"***"}`)
		handler.Decrypt(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		cryptoService.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("KeyLoadFailure", func(t *testing.T) {
		keyService := new(MockCryptoKeyService)
		handler := newTestCryptoHandler(t, new(MockCryptoService), keyService)
		keyService.On("LoadFromBase64", keys.AlgorithmRSA, "bad").Return(nil, keys.MalformedKeyf("not json"))

		c, w := newJSONContext("POST", "/sign", `{"algorithm":"RSA","key":"bad","text":"x"}`)
		handler.Sign(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error loading key")
	})

	t.Run("MissingFields", func(t *testing.T) {
		handler := newTestCryptoHandler(t, new(MockCryptoService), new(MockCryptoKeyService))

		c, w := newJSONContext("POST", "/verify", `{"algorithm":"RSA","key":"k","text":"x"}`)
		handler.Verify(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestCryptoRoutes_EndToEnd drives the real services through the router
func TestCryptoRoutes_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	services := app.SetupTestServices(t, nil)

	r := gin.New()
	SetupRoutes(r, services.CryptoService, services.CryptoKeyService, services.Settings, testutil.SetupTestLogger(t))

	post := func(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req, _ := http.NewRequest("POST", BasePath+path, strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	ephemeralKey := func(t *testing.T, algorithm string) string {
		w := post(t, "/keys/ephemeral", GenerateKeyRequest{Algorithm: algorithm})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var response KeyModelResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response.Key
	}

	t.Run("AESRoundTrip", func(t *testing.T) {
		key := ephemeralKey(t, "AES")

		w := post(t, "/encrypt", CryptoRequest{Algorithm: "AES", Key: key, Text: "Hello from CryptoSuite!"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var encrypted DataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))

		w = post(t, "/decrypt", CryptoRequest{Algorithm: "AES", Key: key, Data: encrypted.Data})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var decrypted DataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))
		assert.Equal(t, "Hello from CryptoSuite!", decrypted.Text)
	})

	t.Run("ECCSignVerify", func(t *testing.T) {
		key := ephemeralKey(t, "ECC")

		w := post(t, "/sign", CryptoRequest{Algorithm: "ECC", Key: key, Text: "Hello ECC!"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var signed DataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signed))

		for text, expected := range map[string]bool{"Hello ECC!": true, "Hello ECC?": false} {
			w = post(t, "/verify", VerifyRequest{
				CryptoRequest: CryptoRequest{Algorithm: "ECC", Key: key, Text: text},
				Signature:     signed.Data,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var verified VerifyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verified))
			assert.Equal(t, expected, verified.Valid, text)
		}
	})

	t.Run("ECCEncryptIsUnsupported", func(t *testing.T) {
		key := ephemeralKey(t, "ECC")
		w := post(t, "/encrypt", CryptoRequest{Algorithm: "ECC", Key: key, Text: "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BadCiphertextIsClientError", func(t *testing.T) {
		aesKey := ephemeralKey(t, "AES")
		w := post(t, "/decrypt", CryptoRequest{Algorithm: "AES", Key: aesKey, Data: "AQIDBAUG"})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		rsaKey := ephemeralKey(t, "RSA")
		w = post(t, "/decrypt", CryptoRequest{Algorithm: "RSA", Key: rsaKey, Data: "AQIDBAUG"})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = post(t, "/encrypt", CryptoRequest{Algorithm: "RSA", Key: rsaKey, Text: strings.Repeat("x", 200)})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("KeyOfOtherAlgorithm", func(t *testing.T) {
		key := ephemeralKey(t, "AES")
		w := post(t, "/sign", CryptoRequest{Algorithm: "RSA", Key: key, Text: "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GenerateAndList", func(t *testing.T) {
		w := post(t, "/keys", GenerateKeyRequest{Algorithm: "RSA"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var generated KeyGenerationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))
		assert.True(t, strings.HasSuffix(generated.KeyFileName, ".pem"))
		assert.FileExists(t, generated.KeyFilePath)

		_, err := base64.RawURLEncoding.DecodeString(ephemeralKey(t, "RSA"))
		assert.NoError(t, err)
	})
}
