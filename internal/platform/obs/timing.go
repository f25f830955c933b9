package obs

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

const maxRequestIDLen = 128

// Attach a request id to ctx for correlating log lines. An empty or
// overlong incoming id is replaced by a fresh UUID.
func WithRequestID(ctx context.Context, incoming string) (context.Context, string) {
	id := strings.TrimSpace(incoming)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, RequestIDKey, id), id
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs how long the named operation took. Use as
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
