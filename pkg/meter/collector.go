package meter

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a named set of average meters as Prometheus gauges,
// one pair of series (average and last value) per meter. Register it
// with a prometheus.Registerer; scrapes read the meters live.
type Collector struct {
	mu     sync.RWMutex
	meters map[string]*AverageMeter

	averageDesc *prometheus.Desc
	lastDesc    *prometheus.Desc
}

func NewCollector(namespace string) *Collector {
	return &Collector{
		meters: make(map[string]*AverageMeter),
		averageDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "run", "metric_average"),
			"Weighted running average of a run metric.",
			[]string{"metric"}, nil,
		),
		lastDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "run", "metric_last"),
			"Most recently observed value of a run metric.",
			[]string{"metric"}, nil,
		),
	}
}

// Meter returns the meter registered under name, creating it on first
// use.
func (c *Collector) Meter(name string) *AverageMeter {
	c.mu.RLock()
	m, ok := c.meters[name]
	c.mu.RUnlock()
	if ok {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok = c.meters[name]; ok {
		return m
	}
	m = NewAverageMeter()
	c.meters[name] = m
	return m
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.averageDesc
	ch <- c.lastDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, m := range c.meters {
		ch <- prometheus.MustNewConstMetric(c.averageDesc, prometheus.GaugeValue, m.Average(), name)
		ch <- prometheus.MustNewConstMetric(c.lastDesc, prometheus.GaugeValue, m.Last(), name)
	}
}
