// Package metrics exposes Prometheus instruments for path searches and
// placement runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/placement"
)

// Recorder holds the instruments of one registry.
type Recorder struct {
	rounds       prometheus.Counter
	fitAgents    prometheus.Counter
	stuckAgents  prometheus.Counter
	searches     *prometheus.CounterVec
	pathCost     prometheus.Gauge
	generations  prometheus.Counter
	improvements prometheus.Counter
	bestCoverage prometheus.Gauge
	bestCost     prometheus.Gauge
	runDurations *prometheus.HistogramVec
}

// NewRecorder registers all instruments on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "swarmlab_aco_rounds_total",
			Help: "Exploration rounds completed",
		}),
		fitAgents: f.NewCounter(prometheus.CounterOpts{
			Name: "swarmlab_aco_fit_agents_total",
			Help: "Agents that reached the target and reinforced their path",
		}),
		stuckAgents: f.NewCounter(prometheus.CounterOpts{
			Name: "swarmlab_aco_stuck_agents_total",
			Help: "Agents that ran out of unvisited neighbors",
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "swarmlab_aco_searches_total",
			Help: "Path searches by outcome",
		}, []string{"outcome"}),
		pathCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "swarmlab_aco_path_cost",
			Help: "Cost of the last returned path",
		}),
		generations: f.NewCounter(prometheus.CounterOpts{
			Name: "swarmlab_placement_generations_total",
			Help: "Placement generations completed",
		}),
		improvements: f.NewCounter(prometheus.CounterOpts{
			Name: "swarmlab_placement_improvements_total",
			Help: "Candidates that replaced the best placement",
		}),
		bestCoverage: f.NewGauge(prometheus.GaugeOpts{
			Name: "swarmlab_placement_best_coverage_percent",
			Help: "Coverage of the best placement so far",
		}),
		bestCost: f.NewGauge(prometheus.GaugeOpts{
			Name: "swarmlab_placement_best_cost",
			Help: "Total cost of the best placement so far",
		}),
		runDurations: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swarmlab_run_duration_seconds",
			Help:    "Wall time of a whole search",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"algorithm"}),
	}
}

// ObserveRound records one finished exploration round.
func (r *Recorder) ObserveRound(s aco.RoundStats) {
	r.rounds.Inc()
	r.fitAgents.Add(float64(s.Fit))
	r.stuckAgents.Add(float64(s.Stuck))
}

// ObserveSearch records the outcome of a path search.
func (r *Recorder) ObserveSearch(res aco.Result, took time.Duration) {
	outcome := "reached"
	if !res.Reached {
		outcome = "incomplete"
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.pathCost.Set(res.Cost)
	r.runDurations.WithLabelValues("aco").Observe(took.Seconds())
}

// ObserveGeneration records one finished placement generation.
func (r *Recorder) ObserveGeneration(s placement.GenerationStats) {
	r.generations.Inc()
	if s.Accepted {
		r.improvements.Inc()
	}
	r.bestCoverage.Set(s.Best.Coverage)
	r.bestCost.Set(s.Best.Cost)
}

// ObservePlacement records the final placement result.
func (r *Recorder) ObservePlacement(res placement.Result, took time.Duration) {
	r.bestCoverage.Set(res.Coverage)
	r.bestCost.Set(res.Cost)
	r.runDurations.WithLabelValues("placement").Observe(took.Seconds())
}

// Summarize gathers g and folds every family into one number: counters and
// gauges are summed over their label sets, histograms report their sample
// count.
func Summarize(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var v float64
		for _, m := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v += m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v += m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				v += float64(m.GetHistogram().GetSampleCount())
			}
		}
		out[mf.GetName()] = v
	}

	return out, nil
}
