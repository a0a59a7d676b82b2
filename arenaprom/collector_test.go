package arenaprom

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/densearena"
)

type block struct {
	ID   int64
	Next densearena.Ref[block]
}

func TestCollector(t *testing.T) {
	a := densearena.WithCapacity[densearena.Ref[block], block](8)
	a.AllocN(3)

	c := NewCollector("blocks", a)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	const expected = `
# HELP densearena_bytes_in_use The bytes occupied by stored entities.
# TYPE densearena_bytes_in_use gauge
densearena_bytes_in_use{arena="blocks"} 48
# HELP densearena_bytes_reserved The bytes reserved by the arena's backing storage.
# TYPE densearena_bytes_reserved gauge
densearena_bytes_reserved{arena="blocks"} 128
# HELP densearena_capacity_entities The number of entities the arena can hold before growing.
# TYPE densearena_capacity_entities gauge
densearena_capacity_entities{arena="blocks"} 8
# HELP densearena_entities The number of entities stored in the arena.
# TYPE densearena_entities gauge
densearena_entities{arena="blocks"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestCollectorReadsOnScrape(t *testing.T) {
	s := densearena.NewSafe[densearena.Ref[block], block](0)
	c := NewCollector("safe", s)

	require.Equal(t, 4, testutil.CollectAndCount(c))
	s.Push(block{ID: 1})
	s.Push(block{ID: 2})

	const expected = `
# HELP densearena_entities The number of entities stored in the arena.
# TYPE densearena_entities gauge
densearena_entities{arena="safe"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "densearena_entities"))
}

func TestCollectorAcceptsView(t *testing.T) {
	s := densearena.NewSafe[densearena.Ref[block], block](0)
	s.Push(block{})

	const expected = `
# HELP densearena_entities The number of entities stored in the arena.
# TYPE densearena_entities gauge
densearena_entities{arena="view"} 1
`
	s.Read(func(v densearena.View[densearena.Ref[block], block]) {
		require.NoError(t, testutil.CollectAndCompare(NewCollector("view", v), strings.NewReader(expected), "densearena_entities"))
	})
}
