// Package stats exposes reel group activity as Prometheus
// metrics on a private registry.
package stats

import (
	"strconv"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/symbol"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mireel"

// Group observer collecting spin metrics.
type Collector struct {
	registry     *prometheus.Registry
	spins        prometheus.Counter
	completed    prometheus.Counter
	reelStops    *prometheus.CounterVec
	landed       *prometheus.CounterVec
	landedValue  prometheus.Counter
	spinDuration prometheus.Histogram
	reelDuration *prometheus.HistogramVec
	names        func(symbol.ID) string
	values       func(symbol.ID) int
}

var _ mireel.Observer = (*Collector)(nil)

// Creates a collector. If table is not nil, landed symbols are
// labelled with their names instead of their numeric ids.
func NewCollector(table *symbol.Table) *Collector {
	self := &Collector{
		registry: prometheus.NewRegistry(),
		spins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_total",
			Help:      "Spins started.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_completed_total",
			Help:      "Spins whose reels all stopped.",
		}),
		reelStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reel_stops_total",
			Help:      "Completed reel stops.",
		}, []string{"reel"}),
		landed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landed_symbols_total",
			Help:      "Symbols landed on the payline.",
		}, []string{"symbol"}),
		landedValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landed_value_total",
			Help:      "Sum of the values of the symbols landed on the payline.",
		}),
		spinDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "spin_duration_ticks",
			Help:      "Updates from spin start to the last reel stopping.",
			Buckets:   prometheus.LinearBuckets(60, 30, 10),
		}),
		reelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reel_stop_ticks",
			Help:      "Updates from spin start to each reel stopping.",
			Buckets:   prometheus.LinearBuckets(60, 30, 10),
		}, []string{"reel"}),
		names:  func(id symbol.ID) string { return strconv.Itoa(int(id)) },
		values: func(symbol.ID) int { return 0 },
	}
	if table != nil {
		self.names = func(id symbol.ID) string {
			sym, err := table.Get(id)
			if err != nil {
				return strconv.Itoa(int(id))
			}
			return sym.Name
		}
		self.values = table.Value
	}
	self.registry.MustRegister(
		self.spins,
		self.completed,
		self.reelStops,
		self.landed,
		self.landedValue,
		self.spinDuration,
		self.reelDuration,
	)
	return self
}

// Returns the registry holding the collector metrics.
func (self *Collector) Registry() *prometheus.Registry {
	return self.registry
}

func (self *Collector) SpinStarted(reels int) {
	self.spins.Inc()
}

func (self *Collector) ReelStopped(reel int, landed symbol.ID, ticks uint64) {
	label := strconv.Itoa(reel)
	self.reelStops.WithLabelValues(label).Inc()
	self.reelDuration.WithLabelValues(label).Observe(float64(ticks))
	self.landed.WithLabelValues(self.names(landed)).Inc()
	self.landedValue.Add(float64(self.values(landed)))
}

func (self *Collector) SpinCompleted(result mireel.SpinResult) {
	self.completed.Inc()
	self.spinDuration.Observe(float64(result.Ticks))
}
