package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for slot and booking flows.
type BookingMetrics struct {
	slotListTotal     *prometheus.CounterVec
	verdictTotal      *prometheus.CounterVec
	clinicAPITotal    *prometheus.CounterVec
	clinicAPILatency  *prometheus.HistogramVec
	transitionTotal   *prometheus.CounterVec
	eventPublishTotal *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		slotListTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "slots",
			Name:      "list_total",
			Help:      "Total slot list computations by cache outcome",
		}, []string{"cache"}),
		verdictTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "booking",
			Name:      "verdict_total",
			Help:      "Total booking verdicts by stage and reason code",
		}, []string{"stage", "accepted", "reason"}),
		clinicAPITotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "clinic_api",
			Name:      "requests_total",
			Help:      "Total outbound clinic API requests",
		}, []string{"resource", "status"}),
		clinicAPILatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "clinic_api",
			Name:      "request_latency_seconds",
			Help:      "Latency of outbound clinic API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		transitionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "appointments",
			Name:      "status_transition_total",
			Help:      "Total appointment status transitions",
		}, []string{"from", "to"}),
		eventPublishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "events",
			Name:      "publish_total",
			Help:      "Total appointment events published",
		}, []string{"event_type", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.slotListTotal, m.verdictTotal, m.clinicAPITotal, m.clinicAPILatency, m.transitionTotal, m.eventPublishTotal)
	return m
}

func (m *BookingMetrics) ObserveSlotList(cacheHit bool) {
	if m == nil {
		return
	}
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	m.slotListTotal.WithLabelValues(label).Inc()
}

// ObserveVerdict counts a verdict; stage is "validate" or "submit".
func (m *BookingMetrics) ObserveVerdict(stage string, accepted bool, reason string) {
	if m == nil {
		return
	}
	acceptedLabel := "false"
	if accepted {
		acceptedLabel = "true"
	}
	m.verdictTotal.WithLabelValues(stage, acceptedLabel, reason).Inc()
}

func (m *BookingMetrics) ObserveClinicAPI(resource, status string, seconds float64) {
	if m == nil {
		return
	}
	m.clinicAPITotal.WithLabelValues(resource, status).Inc()
	m.clinicAPILatency.WithLabelValues(resource).Observe(seconds)
}

func (m *BookingMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitionTotal.WithLabelValues(from, to).Inc()
}

func (m *BookingMetrics) ObserveEventPublish(eventType, status string) {
	if m == nil {
		return
	}
	m.eventPublishTotal.WithLabelValues(eventType, status).Inc()
}
