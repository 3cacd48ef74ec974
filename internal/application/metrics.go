package application

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts domain events. A nil *Metrics records nothing.
type Metrics struct {
	validationFailures *prometheus.CounterVec
	messagesSent       prometheus.Counter
	ordersPlaced       prometheus.Counter
	likes              *prometheus.CounterVec
	follows            *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usecase_validation_failures_total",
			Help: "Inputs rejected before reaching a repository.",
		}, []string{"usecase"}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Direct messages persisted.",
		}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders created.",
		}),
		likes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "post_like_changes_total",
			Help: "Like mutations by resulting state.",
		}, []string{"liked"}),
		follows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "profile_follow_changes_total",
			Help: "Follow and unfollow calls.",
		}, []string{"action"}),
	}
	if reg != nil {
		reg.MustRegister(m.validationFailures, m.messagesSent, m.ordersPlaced, m.likes, m.follows)
	}
	return m
}

func (m *Metrics) rejected(usecase string, err error) error {
	if m != nil {
		m.validationFailures.WithLabelValues(usecase).Inc()
	}
	return err
}

func (m *Metrics) messageSent() {
	if m != nil {
		m.messagesSent.Inc()
	}
}

func (m *Metrics) orderPlaced() {
	if m != nil {
		m.ordersPlaced.Inc()
	}
}

func (m *Metrics) liked(liked bool) {
	if m == nil {
		return
	}
	if liked {
		m.likes.WithLabelValues("true").Inc()
	} else {
		m.likes.WithLabelValues("false").Inc()
	}
}

func (m *Metrics) follow(action string) {
	if m != nil {
		m.follows.WithLabelValues(action).Inc()
	}
}
