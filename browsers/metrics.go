// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Discovery and launch instruments, registered on the default registry.
// This package does not expose them over HTTP; embedders that want scraping
// mount promhttp themselves.
var (
	discoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "browsercore_discovery_duration_seconds",
			Help:    "Duration of full browser discovery passes in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	browsersDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "browsercore_browsers_discovered_total",
			Help: "Total number of browsers that passed discovery filters",
		},
	)

	launchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "browsercore_launch_total",
			Help: "Total number of browser launch attempts",
		},
		[]string{"browser_type", "outcome"},
	)
)

func observeDiscovery(elapsed time.Duration, matched int) {
	discoveryDuration.Observe(elapsed.Seconds())
	browsersDiscovered.Add(float64(matched))
}

func observeLaunch(browserType, outcome string) {
	launchTotal.WithLabelValues(browserType, outcome).Inc()
}
