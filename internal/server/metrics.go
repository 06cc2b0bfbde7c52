package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hashstorage_operations_total",
	Help: "Operations served, by outcome",
}, []string{"op", "status"})

var operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "hashstorage_operation_duration_seconds",
	Help:    "Time to run one operation",
	Buckets: prometheus.ExponentialBucketsRange(0.0001, 2, 20),
}, []string{"op"})
