package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
)

// Session is the signed-in identity a request runs as. It is created by
// SignUp/SignIn, rebuilt by Load on every call and ended by SignOut.
type Session struct {
	Token     string
	ID        string // jti, also the sessions row id
	UserID    bson.ObjectID
	Email     string
	Profile   *data.Profile // nil if the profile row is missing
	IsAdmin   bool
	ExpiresAt time.Time
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the session installed by WithSession, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*Session)
	return sess, ok && sess != nil
}
