package v1

import (
	"crypto/rsa"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rexmax1018/CryptoSuite48/internal/domain/keys"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrUnsupported),
		errors.Is(err, keys.ErrMalformedKey),
		errors.Is(err, keys.ErrMalformedEncoding),
		errors.Is(err, rsa.ErrMessageTooLong),
		errors.Is(err, rsa.ErrDecryption):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
