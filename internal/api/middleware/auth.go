package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fstr-tourism/pereval-api/internal/api/handler/v1/response"
	"github.com/fstr-tourism/pereval-api/internal/pkg/jwthelper"
)

const ModeratorKey = "moderator"

var (
	errMissingToken = errors.New("missing bearer token")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// moderator username under ModeratorKey.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			ctx.Abort()
			return
		}

		ctx.Set(ModeratorKey, claims.Subject)
		ctx.Next()
	}
}
