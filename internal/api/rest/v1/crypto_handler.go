package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/codec"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// CryptoHandler defines the interface for the encrypt, decrypt, sign and verify endpoints
type CryptoHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type cryptoHandler struct {
	cryptoService    keys.CryptoService
	cryptoKeyService keys.CryptoKeyService
	settings         config.CryptoSettings
	logger           logger.Logger
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cryptoService keys.CryptoService, cryptoKeyService keys.CryptoKeyService, settings config.CryptoSettings, logger logger.Logger) CryptoHandler {
	return &cryptoHandler{
		cryptoService:    cryptoService,
		cryptoKeyService: cryptoKeyService,
		settings:         settings,
		logger:           logger,
	}
}

// operationInput is a bound request with its key loaded and payload decoded
type operationInput struct {
	algorithm keys.Algorithm
	key       keys.KeyModel
	payload   []byte
	encoder   *codec.Encoder
}

func (handler *cryptoHandler) prepare(ctx *gin.Context, request *CryptoRequest) (*operationInput, bool) {
	algorithm, err := keys.ParseAlgorithm(request.Algorithm)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return nil, false
	}
	encoder := handler.settings.EncoderFor(algorithm)

	key, err := handler.cryptoKeyService.LoadFromBase64(algorithm, request.Key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error loading key: %v", err))
		return nil, false
	}

	var payload []byte
	if request.Data != "" {
		payload, err = encoder.DecodeBase64(request.Data)
	} else {
		payload, err = encoder.TextToBytes(request.Text)
	}
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error decoding payload: %v", err))
		return nil, false
	}

	return &operationInput{algorithm: algorithm, key: key, payload: payload, encoder: encoder}, true
}

func (handler *cryptoHandler) bind(ctx *gin.Context) (*operationInput, bool) {
	var request CryptoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return nil, false
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return handler.prepare(ctx, &request)
}

// respondData writes output as Base64; empty output stays an empty string
func respondData(ctx *gin.Context, encoder *codec.Encoder, output []byte, withText bool) {
	var response DataResponse
	if len(output) > 0 {
		encoded, err := encoder.EncodeBase64(output)
		if err != nil {
			abortWithError(ctx, http.StatusInternalServerError, err.Error())
			return
		}
		response.Data = encoded
		if withText {
			if text, err := encoder.BytesToText(output); err == nil {
				response.Text = text
			}
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// Encrypt handles the POST request to encrypt a payload
// @Summary Encrypt with AES or RSA
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body CryptoRequest true "Algorithm, key and payload"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cryptoHandler) Encrypt(ctx *gin.Context) {
	input, ok := handler.bind(ctx)
	if !ok {
		return
	}

	ciphertext, err := handler.cryptoService.Encrypt(input.payload, input.algorithm, input.key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error encrypting: %v", err))
		return
	}
	respondData(ctx, input.encoder, ciphertext, false)
}

// Decrypt handles the POST request to decrypt a Base64 payload
// @Summary Decrypt with AES or RSA
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body CryptoRequest true "Algorithm, key and ciphertext"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cryptoHandler) Decrypt(ctx *gin.Context) {
	input, ok := handler.bind(ctx)
	if !ok {
		return
	}

	plainText, err := handler.cryptoService.Decrypt(input.payload, input.algorithm, input.key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error decrypting: %v", err))
		return
	}
	respondData(ctx, input.encoder, plainText, true)
}

// Sign handles the POST request to sign a payload
// @Summary Sign with RSA or ECC
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body CryptoRequest true "Algorithm, key and payload"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (handler *cryptoHandler) Sign(ctx *gin.Context) {
	input, ok := handler.bind(ctx)
	if !ok {
		return
	}

	signature, err := handler.cryptoService.Sign(input.payload, input.algorithm, input.key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error signing: %v", err))
		return
	}
	respondData(ctx, input.encoder, signature, false)
}

// Verify handles the POST request to check a signature
// @Summary Verify with RSA or ECC
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Algorithm, key, payload and signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify [post]
func (handler *cryptoHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	input, ok := handler.prepare(ctx, &request.CryptoRequest)
	if !ok {
		return
	}
	signature, err := input.encoder.DecodeBase64(request.Signature)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error decoding signature: %v", err))
		return
	}

	valid, err := handler.cryptoService.Verify(input.payload, signature, input.algorithm, input.key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error verifying: %v", err))
		return
	}
	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}
