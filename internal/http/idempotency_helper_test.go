package http

import (
	"testing"
	"time"

	"github.com/guttosm/trip-service/internal/middleware"
)

func newIdempotency(t *testing.T) *middleware.Idempotency {
	t.Helper()
	idem := middleware.NewIdempotency(time.Minute)
	t.Cleanup(idem.Stop)
	return idem
}
