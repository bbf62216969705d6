package house

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopea.xyz/smart-house-service/pkg/models"
)

func TestMetricRingEviction(t *testing.T) {
	ring := &metricRing{}

	base := time.Now()
	for idx := range maxMetrics + 10 {
		ring.append(models.MetricSample{Time: base.Add(time.Duration(idx) * time.Second)})
	}

	samples := ring.snapshot()
	require.Len(t, samples, maxMetrics)

	// the ten oldest were evicted
	assert.Equal(t, base.Add(10*time.Second), samples[0].Time)
	assert.Equal(t, base.Add(time.Duration(maxMetrics+9)*time.Second), samples[len(samples)-1].Time)
}
