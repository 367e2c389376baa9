package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
	GenerateEphemeralKey(ctx *gin.Context)
	ListGenerated(ctx *gin.Context)
}

type keyHandler struct {
	cryptoKeyService keys.CryptoKeyService
	settings         config.CryptoSettings
	logger           logger.Logger
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(cryptoKeyService keys.CryptoKeyService, settings config.CryptoSettings, logger logger.Logger) KeyHandler {
	return &keyHandler{
		cryptoKeyService: cryptoKeyService,
		settings:         settings,
		logger:           logger,
	}
}

func bindGenerateKeyRequest(ctx *gin.Context) (keys.Algorithm, *GenerateKeyRequest, bool) {
	var request GenerateKeyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key request: %v", err))
		return "", nil, false
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return "", nil, false
	}
	algorithm, err := keys.ParseAlgorithm(request.Algorithm)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return "", nil, false
	}
	return algorithm, &request, true
}

// GenerateKey handles the POST request to generate a key and write it to the key directory
// @Summary Generate and save a key
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Algorithm and optional path"
// @Success 201 {object} KeyGenerationResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {
	algorithm, request, ok := bindGenerateKeyRequest(ctx)
	if !ok {
		return
	}

	result, err := handler.cryptoKeyService.GenerateAndSaveKey(ctx.Request.Context(), algorithm, request.Path)
	if err != nil {
		handler.logger.Error("Key generation failed: ", err)
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error generating key: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, newKeyGenerationResponse(result))
}

// GenerateEphemeralKey handles the POST request to generate a key without writing it
// @Summary Generate a key in memory
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Algorithm"
// @Success 200 {object} KeyModelResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys/ephemeral [post]
func (handler *keyHandler) GenerateEphemeralKey(ctx *gin.Context) {
	algorithm, _, ok := bindGenerateKeyRequest(ctx)
	if !ok {
		return
	}

	model, err := handler.cryptoKeyService.GenerateKeyOnly(algorithm)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error generating key: %v", err))
		return
	}

	document, err := json.Marshal(model)
	if err != nil {
		abortWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("error serializing key: %v", err))
		return
	}
	encoded, err := handler.settings.EncoderFor(algorithm).EncodeBase64(document)
	if err != nil {
		abortWithError(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, KeyModelResponse{
		Algorithm: string(algorithm),
		Model:     model.ModelName(),
		Key:       encoded,
	})
}

// ListGenerated handles the GET request to list recorded key files
// @Summary List generated keys
// @Tags Key
// @Produce json
// @Param algorithm query string false "Algorithm"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} KeyGenerationResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListGenerated(ctx *gin.Context) {
	query := &keys.KeyGenerationQuery{}

	if algorithm := ctx.Query("algorithm"); len(algorithm) > 0 {
		query.Algorithm = keys.Algorithm(algorithm)
	}
	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(name); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("%s must be a number", name))
				return
			}
			*target = value
		}
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	results, err := handler.cryptoKeyService.ListGenerated(ctx.Request.Context(), query)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error listing keys: %v", err))
		return
	}

	listResponse := make([]KeyGenerationResponse, 0, len(results))
	for _, result := range results {
		listResponse = append(listResponse, newKeyGenerationResponse(result))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
