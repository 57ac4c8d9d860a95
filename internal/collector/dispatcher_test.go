package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollector is a test double for Collector that never touches the
// real AWS clients: it returns a fixed record or a fixed error.
type fakeCollector struct {
	name    string
	records []Record
	err     error
}

func (f fakeCollector) Name() string { return f.name }

func (f fakeCollector) Collect(ctx context.Context, clients *Clients) ([]Record, error) {
	return f.records, f.err
}

func TestDispatcher_MergesInDispatchOrder(t *testing.T) {
	var collectors []Collector
	for i := 0; i < 7; i++ {
		collectors = append(collectors, fakeCollector{
			name:    fmt.Sprintf("svc-%d", i),
			records: []Record{{ResourceID: fmt.Sprintf("res-%d", i), Service: fmt.Sprintf("svc-%d", i)}},
		})
	}

	d := NewDispatcher(collectors...)
	records, errs := d.Run(context.Background(), nil)

	require.Empty(t, errs)
	require.Len(t, records, 7)
	for i, rec := range records {
		assert.Equal(t, fmt.Sprintf("res-%d", i), rec.ResourceID)
	}
}

func TestDispatcher_IsolatesPerCollectorFailures(t *testing.T) {
	collectors := []Collector{
		fakeCollector{name: "EC2", records: []Record{{ResourceID: "i-1", Service: "EC2"}}},
		fakeCollector{name: "EBS", err: errors.New("throttled")},
		fakeCollector{name: "S3", records: []Record{{ResourceID: "bucket-1", Service: "S3"}}},
	}

	d := NewDispatcher(collectors...)
	records, errs := d.Run(context.Background(), nil)

	require.Len(t, records, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, "EBS: throttled", errs[0])
}

func TestDispatcher_PreservesWithinCollectorOrder(t *testing.T) {
	collectors := []Collector{
		fakeCollector{name: "EC2", records: []Record{
			{ResourceID: "i-1", Service: "EC2"},
			{ResourceID: "i-2", Service: "EC2"},
			{ResourceID: "i-3", Service: "EC2"},
		}},
	}

	d := NewDispatcher(collectors...)
	records, _ := d.Run(context.Background(), nil)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"i-1", "i-2", "i-3"}, []string{records[0].ResourceID, records[1].ResourceID, records[2].ResourceID})
}

func TestDispatcher_AllCollectorsFailStillCompletes(t *testing.T) {
	collectors := []Collector{
		fakeCollector{name: "EC2", err: errors.New("boom1")},
		fakeCollector{name: "EBS", err: errors.New("boom2")},
	}

	d := NewDispatcher(collectors...)
	records, errs := d.Run(context.Background(), nil)

	assert.Empty(t, records)
	require.Len(t, errs, 2)
}

func TestDispatcher_EmptyRoster(t *testing.T) {
	d := NewDispatcher()
	records, errs := d.Run(context.Background(), nil)
	assert.Empty(t, records)
	assert.Empty(t, errs)
}
