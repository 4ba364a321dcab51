package epidemicgo

import "github.com/prometheus/client_golang/prometheus"

// MetricsSink is a DeltaSink that publishes compartment counts and
// environmental load as Prometheus gauges, grounded on the
// client_golang usage pulled into the pack by jhkimqd-chaos-utils and
// leemwalker-thousand-worlds. It is registered against a caller-owned
// registry so cmd/epidemicgo can choose whether and where to serve
// /metrics.
type MetricsSink struct {
	exposed   prometheus.Gauge
	infected  prometheus.Gauge
	recovered prometheus.Gauge
	dead      prometheus.Gauge

	zoneAvgLoad     prometheus.Gauge
	zoneTotalLoad   prometheus.Gauge
	contaminated    prometheus.Gauge
	stepsProcessed  prometheus.Counter
	sinkErrorsTotal prometheus.Counter
}

// NewMetricsSink creates and registers the gauges under reg. runID
// labels every metric so multiple concurrent runs can share a registry.
func NewMetricsSink(reg prometheus.Registerer, runID string) (*MetricsSink, error) {
	labels := prometheus.Labels{"run_id": runID}
	m := &MetricsSink{
		exposed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_exposed_total", Help: "Current count of exposed individuals.", ConstLabels: labels,
		}),
		infected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_infected_total", Help: "Current count of infectious individuals.", ConstLabels: labels,
		}),
		recovered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_recovered_total", Help: "Current count of recovered individuals.", ConstLabels: labels,
		}),
		dead: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_dead_total", Help: "Current count of dead individuals.", ConstLabels: labels,
		}),
		zoneAvgLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_zone_avg_load", Help: "Average airborne load across contaminated zones.", ConstLabels: labels,
		}),
		zoneTotalLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_zone_total_load", Help: "Total airborne load across all zones.", ConstLabels: labels,
		}),
		contaminated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "epidemicgo_zones_contaminated", Help: "Count of zones with nonzero airborne load.", ConstLabels: labels,
		}),
		stepsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "epidemicgo_steps_processed_total", Help: "Count of non-empty deltas processed.", ConstLabels: labels,
		}),
		sinkErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "epidemicgo_sink_errors_total", Help: "Count of delta-carried error terminations observed.", ConstLabels: labels,
		}),
	}
	for _, c := range []prometheus.Collector{
		m.exposed, m.infected, m.recovered, m.dead,
		m.zoneAvgLoad, m.zoneTotalLoad, m.contaminated,
		m.stepsProcessed, m.sinkErrorsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsSink) Handle(d Delta) error {
	if d.Err != "" {
		m.sinkErrorsTotal.Inc()
		return nil
	}
	if d.Done {
		return nil
	}
	m.exposed.Set(float64(d.TotalExposed))
	m.infected.Set(float64(d.TotalInfected))
	m.recovered.Set(float64(d.TotalRecovered))
	m.dead.Set(float64(d.TotalDead))
	m.zoneAvgLoad.Set(d.Stats.AvgLoad)
	m.zoneTotalLoad.Set(d.Stats.TotalLoad)
	m.contaminated.Set(float64(d.Stats.ContaminatedZones))
	m.stepsProcessed.Inc()
	return nil
}
