package data

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-charging-dashboard/internal/analysis"
	"ev-charging-dashboard/internal/model"
)

func TestStoreLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.csv")
	src, err := os.ReadFile(filepath.Join("testdata", "sessions.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, src, 0o644))

	s := NewStore(path)
	assert.Nil(t, s.Dataset())
	assert.Equal(t, path, s.Path())

	first, err := s.Init()
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	second, err := s.Init()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, s.Dataset())
}

func TestStoreRemembersError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	s := NewStore(path)
	_, err := s.Init()
	require.Error(t, err)

	src, err := os.ReadFile(filepath.Join("testdata", "sessions.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, src, 0o644))

	_, err = s.Init()
	assert.Error(t, err, "a failed load is not retried")
	assert.Nil(t, s.Dataset())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(filepath.Join("testdata", "sessions.csv"))

	var wg sync.WaitGroup
	handles := make([]*model.Dataset, 8)
	for i := range handles {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			ds, err := s.Init()
			assert.NoError(t, err)
			handles[i] = ds
		}(i)
		go func() {
			defer wg.Done()
			if ds := s.Dataset(); ds != nil {
				assert.Equal(t, 4, ds.Len())
			}
		}()
	}
	wg.Wait()

	for _, ds := range handles {
		assert.Same(t, handles[0], ds)
	}
}

func TestLoadCSVIsRepeatable(t *testing.T) {
	path := filepath.Join("testdata", "sessions.csv")
	first, err := LoadCSV(path)
	require.NoError(t, err)
	second, err := LoadCSV(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.UnparsedTimestamps, second.UnparsedTimestamps)
	assert.Equal(t, analysis.CountByHour(first), analysis.CountByHour(second))
	assert.Equal(t, analysis.SumBy(first, analysis.KeyLocation, analysis.ValueKWh),
		analysis.SumBy(second, analysis.KeyLocation, analysis.ValueKWh))

	m1, ok1 := analysis.Mean(first, analysis.ValueCost)
	m2, ok2 := analysis.Mean(second, analysis.ValueCost)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, m1, m2)
}
