package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Domain metric collectors shared across billing packages. They are nil
// until MustRegisterDomainMetrics runs, and the Inc/Set helpers treat nil
// as "metrics disabled".
var (
	// SessionsOpenedTotal counts bill sessions created.
	SessionsOpenedTotal prometheus.Counter
	// BillOpsTotal counts bill mutations by operation.
	BillOpsTotal *prometheus.CounterVec
	// CatalogVersionGauge exposes the current catalog version.
	CatalogVersionGauge prometheus.Gauge
	// AnalyticsRunsTotal counts analytics report generations.
	AnalyticsRunsTotal prometheus.Counter
)

var domainOnce sync.Once

// MustRegisterDomainMetrics registers billing domain collectors on the registry.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SessionsOpenedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_sessions_opened_total",
			Help:      "Total number of bill sessions opened.",
		})
		BillOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_operations_total",
			Help:      "Total number of bill mutations by operation.",
		}, []string{"op"})
		CatalogVersionGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_version",
			Help:      "Current version of the in-memory service catalog.",
		})
		AnalyticsRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_runs_total",
			Help:      "Total number of analytics report generations.",
		})

		mustRegisterCollector(reg, SessionsOpenedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SessionsOpenedTotal = v
			}
		})
		mustRegisterCollector(reg, BillOpsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				BillOpsTotal = v
			}
		})
		mustRegisterCollector(reg, CatalogVersionGauge, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Gauge); ok {
				CatalogVersionGauge = v
			}
		})
		mustRegisterCollector(reg, AnalyticsRunsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				AnalyticsRunsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			reuse(are.ExistingCollector)
			return
		}
		panic(err)
	}
}

// IncSessionOpened bumps the session counter when metrics are enabled.
func IncSessionOpened() {
	if SessionsOpenedTotal != nil {
		SessionsOpenedTotal.Inc()
	}
}

// IncBillOp bumps the bill operation counter for the given op.
func IncBillOp(op string) {
	if BillOpsTotal != nil {
		BillOpsTotal.WithLabelValues(op).Inc()
	}
}

// SetCatalogVersion records the current catalog version.
func SetCatalogVersion(version uint64) {
	if CatalogVersionGauge != nil {
		CatalogVersionGauge.Set(float64(version))
	}
}

// IncAnalyticsRun bumps the analytics run counter.
func IncAnalyticsRun() {
	if AnalyticsRunsTotal != nil {
		AnalyticsRunsTotal.Inc()
	}
}
