package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
)

// optionalEventID reads the eventID query parameter; nil means not given.
func optionalEventID(ctx *gin.Context) (*uuid.UUID, *response.Err) {
	raw := ctx.Query("eventID")
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, response.ErrInvalidInput("eventID", raw)
	}

	return &id, nil
}
