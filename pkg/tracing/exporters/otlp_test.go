package exporters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTLPExporter_RejectsUnknownProtocol(t *testing.T) {
	_, err := NewOTLPExporter(context.Background(), OTLPConfig{Endpoint: "localhost:4317", Protocol: "kafka"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported OTLP protocol")
}
