package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os contadores de negócio expostos em /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Contagem diária
	CountItemsProcessed *prometheus.CounterVec // result: ok | skipped | failed
	CountBatches        prometheus.Counter

	// Ledger de movimentos
	MovementsCreated *prometheus.CounterVec // type: entrada | saida

	// Valorização
	ValuationRequests prometheus.Counter
}

// New cria o registry próprio com os coletores Go padrão e os contadores da aplicação.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.CountItemsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "count_items_processed_total",
			Help:      "Itens processados pela contagem diária, por resultado",
		},
		[]string{"result"},
	)
	m.CountBatches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "count_batches_total",
			Help:      "Lotes de contagem diária recebidos",
		},
	)
	m.MovementsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_movements_created_total",
			Help:      "Movimentos de estoque gravados no ledger, por tipo",
		},
		[]string{"type"},
	)
	m.ValuationRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "valuation_requests_total",
			Help:      "Consultas ao motor de valorização (CMV)",
		},
	)

	registry.MustRegister(
		m.CountItemsProcessed,
		m.CountBatches,
		m.MovementsCreated,
		m.ValuationRequests,
	)

	return m
}

// Handler devolve o handler HTTP do Prometheus sobre o registry próprio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
