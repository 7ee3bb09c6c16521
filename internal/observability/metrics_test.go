package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordAuthFailure(t *testing.T) {
	m := NewMetrics()
	m.RecordAuthFailure("UNAUTHORIZED")
	m.RecordAuthFailure("UNAUTHORIZED")
	m.RecordAuthFailure("FORBIDDEN")

	snapshot := m.AuthFailures()
	assert.Equal(t, int64(2), snapshot["UNAUTHORIZED"])
	assert.Equal(t, int64(1), snapshot["FORBIDDEN"])

	// Snapshot is a copy.
	snapshot["UNAUTHORIZED"] = 99
	assert.Equal(t, int64(2), m.AuthFailures()["UNAUTHORIZED"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/login", "POST", 200, time.Millisecond)
	m.RecordError("/login", "POST", "UNAUTHORIZED")
	m.RecordAuthFailure("UNAUTHORIZED")
	assert.Nil(t, m.AuthFailures())
}
