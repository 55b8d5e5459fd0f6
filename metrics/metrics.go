// Package metrics exposes run outcomes as Prometheus metrics.
package metrics

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/chartprobe/chartprobe/types"
)

const (
	MetricsNamespace = "chartprobe"
)

var (
	Debug = true
	log   = logrus.New()

	validStatuses = []types.CaseStatus{
		types.CaseStatusPass,
		types.CaseStatusFail,
		types.CaseStatusSkip,
		types.CaseStatusError,
	}
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	casesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "cases_total",
		Help:      "Count of executed probe cases",
	}, []string{
		"run_id",
		"operation",
		"category",
		"status",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Verdict of probe runs",
	}, []string{
		"run_id",
		"verdict",
	})

	runCaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_case_total",
		Help:      "Total number of cases in a run",
	}, []string{
		"run_id",
	})

	runCasePassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_case_passed",
		Help:      "Number of passed cases in a run",
	}, []string{
		"run_id",
	})

	runCaseFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_case_failed",
		Help:      "Number of failed cases in a run",
	}, []string{
		"run_id",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration",
		Help:      "Duration of probe runs in seconds",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.WithFields(logrus.Fields{
			"m":     "errors_total",
			"error": error,
		}).Debug("metric inc")
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordCase counts one executed case under its operation and category.
func RecordCase(runID string, rec types.OutcomeRecord) {
	if !isValidStatus(rec.Status) {
		log.WithField("status", rec.Status).Error("RecordCase - invalid status")
		return
	}
	if Debug {
		log.WithFields(logrus.Fields{
			"m":         "cases_total",
			"run_id":    runID,
			"operation": rec.Op,
			"category":  rec.Category,
			"status":    rec.Status,
		}).Debug("metric inc")
	}
	casesTotal.WithLabelValues(runID, rec.Op, string(rec.Category), string(rec.Status)).Inc()
}

// RecordRun publishes the run-level verdict and counters.
func RecordRun(
	runID string,
	verdict types.Verdict,
	stats types.Stats,
	duration time.Duration,
) {
	runResults.WithLabelValues(runID, string(verdict)).Set(1)
	runCaseTotal.WithLabelValues(runID).Add(float64(stats.Total))
	runCasePassed.WithLabelValues(runID).Add(float64(stats.Passed))
	runCaseFailed.WithLabelValues(runID).Add(float64(stats.Failed))
	runDuration.WithLabelValues(runID).Set(duration.Seconds())
}

func isValidStatus(status types.CaseStatus) bool {
	return slices.Contains(validStatuses, status)
}
