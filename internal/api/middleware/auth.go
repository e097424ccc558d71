package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chefskiss/festival-api/internal/api/handler/v1/response"
	"github.com/chefskiss/festival-api/internal/pkg/jwthelper"
)

const ClaimsKey = "claims"

var errMissingBearer = errors.New("missing bearer token")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT only lets admin tokens through and stores their claims in the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearer))
			return
		}

		claims, err := jwthelper.ParseAdminToken(a.signingKey, tokenString)
		if err != nil {
			if errors.Is(err, jwthelper.ErrNotAdmin) {
				response.RenderErr(ctx, response.ErrPermissionDenied(err))
				return
			}

			response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("jwthelper.ParseAdminToken -> %w", err)))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}
