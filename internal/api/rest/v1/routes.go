package v1

import (
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/config"
	"github.com/rexmax1018/CryptoSuite48/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cryptoService keys.CryptoService,
	cryptoKeyService keys.CryptoKeyService,
	settings config.CryptoSettings,
	logger logger.Logger) {

	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(cryptoKeyService, settings, logger)
	v1.POST("/keys", keyHandler.GenerateKey)
	v1.POST("/keys/ephemeral", keyHandler.GenerateEphemeralKey)
	v1.GET("/keys", keyHandler.ListGenerated)

	cryptoHandler := NewCryptoHandler(cryptoService, cryptoKeyService, settings, logger)
	v1.POST("/encrypt", cryptoHandler.Encrypt)
	v1.POST("/decrypt", cryptoHandler.Decrypt)
	v1.POST("/sign", cryptoHandler.Sign)
	v1.POST("/verify", cryptoHandler.Verify)
}
