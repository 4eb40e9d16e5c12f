// Package metrics collects and exposes Prometheus counters for the auth
// flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts auth flow outcomes.
type Collector struct {
	registry *prometheus.Registry

	registrations prometheus.Counter
	loginAttempts *prometheus.CounterVec
	otpIssued     prometheus.Counter
	otpVerified   *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "driveconn_registrations_total",
			Help: "Total successful user registrations.",
		}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "driveconn_login_attempts_total",
			Help: "Login attempts partitioned by outcome.",
		}, []string{"outcome"}),
		otpIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "driveconn_otp_issued_total",
			Help: "Total password-reset challenges issued.",
		}),
		otpVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "driveconn_otp_verifications_total",
			Help: "Password-reset verifications partitioned by outcome.",
		}, []string{"outcome"}),
	}

	c.registry.MustRegister(
		c.registrations,
		c.loginAttempts,
		c.otpIssued,
		c.otpVerified,
	)

	return c
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordLoginAttempt takes one of "success", "invalid_credentials",
// "throttled".
func (c *Collector) RecordLoginAttempt(outcome string) {
	c.loginAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordOTPIssued() {
	c.otpIssued.Inc()
}

// RecordOTPVerification takes one of "success", "wrong_otp", "expired".
func (c *Collector) RecordOTPVerification(outcome string) {
	c.otpVerified.WithLabelValues(outcome).Inc()
}

// Handler returns the exposition endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
