package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/synthai/go-core/internal/analysis"
	"github.com/danielpatrickdp/synthai/go-core/internal/coordinate"
	"github.com/danielpatrickdp/synthai/go-core/internal/eval"
	"github.com/danielpatrickdp/synthai/go-core/internal/zodiac"
)

func reading(t *testing.T, text string) analysis.Reading {
	t.Helper()
	coord, err := coordinate.Resolve(3, 1, 52.5, zodiac.Aries)
	require.NoError(t, err)
	return analysis.NewAnalyzer(nil, analysis.DefaultConfig()).AnalyzeCoordinate(coord, text, nil)
}

func TestObserve_CountsReadings(t *testing.T) {
	rec := NewRecorder()
	r := reading(t, "I move forward with action and momentum")

	rec.Observe(r, eval.EvalResult{Passed: true})
	rec.Observe(r, eval.EvalResult{Passed: false})

	require.Equal(t, 2.0, testutil.ToFloat64(rec.readings.WithLabelValues(r.Primary.String())))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.evalFailures))
	require.Equal(t, uint64(2), sampleCount(t, rec, "synthai_reading_coherence"))
}

func sampleCount(t *testing.T, rec *Recorder, name string) uint64 {
	t.Helper()
	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return 0
}

func TestObserve_AlignedLabel(t *testing.T) {
	rec := NewRecorder()
	r := reading(t, "")
	r.Detection.Aligned = true

	rec.Observe(r, eval.EvalResult{Passed: true})

	require.Equal(t, 1.0, testutil.ToFloat64(rec.detections.WithLabelValues("true")))
	require.Equal(t, 0.0, testutil.ToFloat64(rec.detections.WithLabelValues("false")))
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.Observe(reading(t, ""), eval.EvalResult{Passed: false})

	require.Equal(t, 1.0, testutil.ToFloat64(a.evalFailures))
	require.Equal(t, 0.0, testutil.ToFloat64(b.evalFailures))
}

func TestWriteTextfile(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(reading(t, "structure and pattern"), eval.EvalResult{Passed: true})

	path := filepath.Join(t.TempDir(), "synthai.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.Contains(text, "synthai_readings_total"))
	require.True(t, strings.Contains(text, "synthai_reading_coherence_bucket"))
}

func TestWriteTextfile_BadDir(t *testing.T) {
	rec := NewRecorder()
	err := rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)
}
