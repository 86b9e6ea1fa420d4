package observability

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// sessionCountTimeout bounds the store scan done on each scrape.
const sessionCountTimeout = 2 * time.Second

// SessionLister enumerates stored sessions. session.Manager and every ports.StateStore satisfy it.
type SessionLister interface {
	List(ctx context.Context) ([]string, error)
}

// RegisterSessionGauge exports tally_sessions_active, counted from lister at scrape time.
// The value reflects every adapter writing to the store and drops when a backend
// expires a session. A failed scan is logged and reported as NaN.
func RegisterSessionGauge(reg prometheus.Registerer, lister SessionLister, logger *slog.Logger) prometheus.GaugeFunc {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tally_sessions_active",
		Help: "Sessions currently held by the session store",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), sessionCountTimeout)
		defer cancel()
		ids, err := lister.List(ctx)
		if err != nil {
			if logger != nil {
				logger.Warn("count sessions failed", "err", err)
			}
			return math.NaN()
		}
		return float64(len(ids))
	})
	reg.MustRegister(gauge)
	return gauge
}
