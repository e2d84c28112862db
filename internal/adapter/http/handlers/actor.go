package handlers

import (
	"net/http"
	"strings"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

var errInvalidIdentity = pkg.NewDomainErrorSimple("INVALID_IDENTITY", "Missing or invalid identity headers", http.StatusUnauthorized)

// actorFromRequest reads the acting user from the identity headers injected
// by the gateway. The role value is trusted verbatim once it parses into the
// closed role set.
func actorFromRequest(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := strings.TrimSpace(c.GetHeader(headerUserID))
	if id == "" {
		return entities.Actor{}, errInvalidIdentity
	}
	role, err := entities.ParseRole(c.GetHeader(headerUserRole))
	if err != nil {
		return entities.Actor{}, errInvalidIdentity
	}
	return entities.Actor{ID: id, Role: role}, nil
}
