package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - счетчики доставки уведомлений по каналам
type Metrics struct {
	notifications *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		notifications: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "travel_safety_notifications_total",
			Help: "SOS notification attempts by channel and result.",
		}, []string{"channel", "result"}),
	}
}

func (m *Metrics) observe(channel string, err error) {
	if m == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.notifications.WithLabelValues(channel, result).Inc()
}
