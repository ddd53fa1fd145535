// Package metrics defines all custom Prometheus metrics for the student
// registry API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level request metrics come from the echoprometheus
// middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// StudentsCreatedTotal counts newly created student records.
var StudentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of student records created.",
	},
)

// UsersSeededTotal counts accounts created by the bootstrap seeder.
var UsersSeededTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_seeded_total",
		Help:      "Total number of accounts created by the startup seeder.",
	},
)
