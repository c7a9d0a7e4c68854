package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores Prometheus del servicio. Un receptor nil es un no-op,
// así los tests de los casos de uso no registran nada en el registry global.
type Metrics struct {
	PoliciesCreated   prometheus.Counter
	PoliciesActivated prometheus.Counter
	PoliciesCancelled prometheus.Counter
}

// New crea y registra los contadores en el registry por defecto.
func New() *Metrics {
	return &Metrics{
		PoliciesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "policy_admin_policies_created_total",
			Help: "Total number of policies created",
		}),
		PoliciesActivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "policy_admin_policies_activated_total",
			Help: "Total number of policies activated",
		}),
		PoliciesCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "policy_admin_policies_cancelled_total",
			Help: "Total number of policies cancelled",
		}),
	}
}

// IncPoliciesCreated incrementa el contador de pólizas creadas.
func (m *Metrics) IncPoliciesCreated() {
	if m == nil {
		return
	}
	m.PoliciesCreated.Inc()
}

// IncPoliciesActivated incrementa el contador de pólizas activadas.
func (m *Metrics) IncPoliciesActivated() {
	if m == nil {
		return
	}
	m.PoliciesActivated.Inc()
}

// IncPoliciesCancelled incrementa el contador de pólizas canceladas.
func (m *Metrics) IncPoliciesCancelled() {
	if m == nil {
		return
	}
	m.PoliciesCancelled.Inc()
}
