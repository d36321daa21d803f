// Package metrics は Prometheus 指標を定義します。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "edu_prompt"

// プレビュー画像の結果ラベル
const (
	PreviewAttached = "attached"
	PreviewMissing  = "missing"
	PreviewDisabled = "disabled"
)

var (
	// GenerationTotal は生成リクエストの結果別件数です。status は "success" または失敗分類。
	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lesson",
			Name:      "generation_total",
			Help:      "Total number of lesson generations by outcome",
		},
		[]string{"graphic_type", "status"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lesson",
			Name:      "generation_duration_seconds",
			Help:      "Lesson generation duration in seconds, including the preview image",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"graphic_type"},
	)

	PreviewTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lesson",
			Name:      "preview_total",
			Help:      "Preview image outcome for successful lesson generations",
		},
		[]string{"result"},
	)

	NotificationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "failures_total",
			Help:      "Total number of error reports that could not be delivered",
		},
	)
)
