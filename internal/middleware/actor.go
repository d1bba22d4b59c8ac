package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/festy23/goalboard/internal/team/model"
)

// ActorHeader names the roster user a request acts as.
const ActorHeader = "X-User-ID"

const actorKey = "actor"

// MemberLookup resolves roster users.
type MemberLookup interface {
	GetMember(ctx context.Context, userID string) (teamModel.User, error)
}

// Actor returns a middleware that resolves ActorHeader against the roster and aborts
// with 401 when the header is missing or names an unknown user.
func Actor(lookup MemberLookup, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(ActorHeader)
		if userID == "" {
			abortUnauthenticated(c, ActorHeader+" header is required")
			return
		}

		member, err := lookup.GetMember(c.Request.Context(), userID)
		if err != nil {
			logger.Debugw("rejected unknown actor", "user_id", userID, "request_id", RequestID(c))
			abortUnauthenticated(c, "unknown user")
			return
		}

		c.Set(actorKey, member)
		c.Next()
	}
}

// CurrentActor returns the user resolved by Actor.
func CurrentActor(c *gin.Context) (teamModel.User, bool) {
	value, ok := c.Get(actorKey)
	if !ok {
		return teamModel.User{}, false
	}
	member, ok := value.(teamModel.User)
	return member, ok
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": message,
		},
	})
}
