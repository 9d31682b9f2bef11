package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg               *prometheus.Registry
	OrdersSaved       prometheus.Counter
	LinesAppended     prometheus.Counter
	CatalogLoads      prometheus.Counter
	CatalogCacheHits  prometheus.Counter
	ReceiptsGenerated prometheus.Counter
	SaveLatencySec    prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	ordersSaved := prometheus.NewCounter(prometheus.CounterOpts{Name: "orders_saved_total"})
	linesAppended := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_lines_appended_total"})
	catalogLoads := prometheus.NewCounter(prometheus.CounterOpts{Name: "catalog_loads_total"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{Name: "catalog_cache_hits_total"})
	receipts := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipts_generated_total"})
	saveLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_save_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(ordersSaved, linesAppended, catalogLoads, cacheHits, receipts, saveLatency)
	return &Registry{
		reg:               r,
		OrdersSaved:       ordersSaved,
		LinesAppended:     linesAppended,
		CatalogLoads:      catalogLoads,
		CatalogCacheHits:  cacheHits,
		ReceiptsGenerated: receipts,
		SaveLatencySec:    saveLatency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
