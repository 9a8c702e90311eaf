// Package middleware contains gin middlewares for the API surface.
package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"quoteflow/internal/domain/entities"
)

// Identity headers set by the upstream gateway after authentication. This
// service trusts them as-is; authentication itself is out of scope here.
const (
	HeaderActorID       = "X-Actor-Id"
	HeaderActorRole     = "X-Actor-Role"
	HeaderActorCustomer = "X-Actor-Customer-Id"
	HeaderActorEmail    = "X-Actor-Email"
	HeaderActorCompany  = "X-Actor-Company"
)

const actorContextKey = "quoteflow.actor"

// Identity ingests the gateway identity headers into a normalized Actor and
// stores it on the request context. Identifier values are trimmed here, at the
// system boundary, so every downstream comparison is plain string equality.
// Requests without an actor id proceed with no actor; the capability resolver
// then yields the all-false set.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if id == "" {
			c.Next()
			return
		}

		actor := &entities.Actor{
			ID:          id,
			Role:        parseRole(c.GetHeader(HeaderActorRole)),
			CustomerID:  strings.TrimSpace(c.GetHeader(HeaderActorCustomer)),
			Email:       strings.TrimSpace(c.GetHeader(HeaderActorEmail)),
			CompanyName: strings.TrimSpace(c.GetHeader(HeaderActorCompany)),
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the request's actor, or nil when the request was
// anonymous.
func ActorFromContext(c *gin.Context) *entities.Actor {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*entities.Actor)
	if !ok {
		return nil
	}
	return actor
}

// parseRole accepts either a numeric role level or a role name. Anything else
// parses to level 0, which holds no permissions at all.
func parseRole(raw string) entities.RoleLevel {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return entities.RoleLevel(n)
	}
	switch raw {
	case "customer":
		return entities.RoleCustomer
	case "handler":
		return entities.RoleHandler
	case "team_lead", "team-lead", "lead":
		return entities.RoleTeamLead
	case "admin":
		return entities.RoleAdmin
	}
	return 0
}
