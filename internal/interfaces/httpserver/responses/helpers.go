package responses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-server/internal/domain/room"
	"chat-server/internal/utils/platformerrors"
)

// HandleError handles errors and writes appropriate HTTP responses.
// It maps domain errors to HTTP status codes.
func HandleError(c *gin.Context, err error, message string) {
	if errors.Is(err, room.ErrNotFound) {
		platformerrors.WriteNotFound(c, message)
		return
	}
	if errors.Is(err, room.ErrInvalidPassword) {
		platformerrors.WriteForbidden(c, message)
		return
	}
	platformerrors.WriteInternalError(c, message)
}
