// Package metrics exposes the service's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngoportal_donations_created_total",
		Help: "Donations successfully committed.",
	})
	VolunteersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngoportal_volunteers_registered_total",
		Help: "Volunteer registrations successfully committed.",
	})
	RedistributionRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngoportal_fund_redistribution_runs_total",
		Help: "Successful runs of the fund redistribution routine.",
	})
)
