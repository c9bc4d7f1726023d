package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	upstreamVision    = "vision"
	upstreamRecipeAPI = "recipe_api"

	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	upstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coolpotato_upstream_calls_total",
			Help: "Total number of upstream calls by upstream and outcome",
		},
		[]string{"upstream", "outcome"},
	)

	identifiedIngredients = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coolpotato_identified_ingredients",
			Help:    "Number of ingredients identified per image",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	favoriteFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coolpotato_favorite_fetches_total",
			Help: "Total number of favorites list fetches by outcome",
		},
		[]string{"outcome"},
	)
)
