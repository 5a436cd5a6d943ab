package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var framesStepped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "flipclock_frames_stepped_total",
	Help: "Number of animation frames stepped",
})

var flipsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "flipclock_flips_started_total",
	Help: "Number of digit flips started",
}, []string{"field"})

var setTimeFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "flipclock_set_time_failures_total",
	Help: "Number of timestamps the face rejected",
})

var renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "flipclock_render_duration_seconds",
	Help:    "Time taken to rasterize one frame",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
})
