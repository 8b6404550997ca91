package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gruas_rd/internal/domain/entities"
	"gruas_rd/pkg"

	"github.com/gin-gonic/gin"
)

// Identity is the resolved caller: who is acting and in which role.
type Identity struct {
	ActorID string
	Role    entities.ActorRole
}

// IIdentityResolver maps an incoming request to an Identity. Session and
// token validation happen upstream (API gateway); this service only needs
// the resolved result.
type IIdentityResolver interface {
	Resolve(c *gin.Context) (Identity, error)
}

var ErrNoIdentity = errors.New("request carries no resolved identity")

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"

	contextKeyIdentity = "identity"
)

// HeaderIdentityResolver trusts the identity headers stamped by the API
// gateway after session validation.
type HeaderIdentityResolver struct{}

var _ IIdentityResolver = (*HeaderIdentityResolver)(nil)

func NewHeaderIdentityResolver() *HeaderIdentityResolver {
	return &HeaderIdentityResolver{}
}

func (r *HeaderIdentityResolver) Resolve(c *gin.Context) (Identity, error) {
	actorID := strings.TrimSpace(c.GetHeader(headerActorID))
	role := entities.ActorRole(strings.TrimSpace(c.GetHeader(headerActorRole)))

	if actorID == "" {
		return Identity{}, ErrNoIdentity
	}
	switch role {
	case entities.ActorRoleConductor, entities.ActorRoleCliente:
	default:
		return Identity{}, ErrNoIdentity
	}
	return Identity{ActorID: actorID, Role: role}, nil
}

// RequireIdentity aborts with 401 unless the resolver yields an identity,
// which is then stored on the gin context for handlers.
func RequireIdentity(resolver IIdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolver.Resolve(c)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Not authorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireIdentity.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
