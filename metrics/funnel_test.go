package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/channelscope/channelscope/model"
)

func TestFunnelScenario(t *testing.T) {
	ds := scenarioDataset()
	require.NoError(t, Enrich(ds))

	stages, err := Funnel(ds)
	require.NoError(t, err)
	require.Len(t, stages, 4)

	assert.Equal(t, "Total Videos", stages[0].Name)
	assert.Equal(t, 3, stages[0].Count)
	// Mean views ≈ 53.3: only video "a" is above.
	assert.Equal(t, 1, stages[1].Count)
	// "a" is also above the mean engagement of 11.33.
	assert.Equal(t, 1, stages[2].Count)
	// Only "a" scores above 80.
	assert.Equal(t, "Viral Score > 80", stages[3].Name)
	assert.Equal(t, 1, stages[3].Count)
}

func TestFunnelMonotonicityProperty(t *testing.T) {
	datasets := map[string]model.Dataset{
		"scenario": scenarioDataset(),
		"ascending": {
			{ID: "a", Views: 100, Likes: 5, Comments: 0, EngagementRate: 5},
			{ID: "b", Views: 200, Likes: 16, Comments: 0, EngagementRate: 8},
			{ID: "c", Views: 300, Likes: 30, Comments: 0, EngagementRate: 10},
			{ID: "d", Views: 400, Likes: 48, Comments: 0, EngagementRate: 12},
		},
		"skewed": {
			{ID: "hit", Views: 1_000_000, Likes: 90_000, Comments: 8_000, EngagementRate: 9.8},
			{ID: "mid", Views: 20_000, Likes: 900, Comments: 50, EngagementRate: 4.75},
			{ID: "low1", Views: 500, Likes: 10, Comments: 1, EngagementRate: 2.2},
			{ID: "low2", Views: 300, Likes: 4, Comments: 0, EngagementRate: 1.333},
			{ID: "low3", Views: 100, Likes: 1, Comments: 0, EngagementRate: 1},
		},
	}

	for name, ds := range datasets {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Enrich(ds))

			stages, err := Funnel(ds)
			require.NoError(t, err)

			for i := 1; i < len(stages); i++ {
				assert.LessOrEqual(t, stages[i].Count, stages[i-1].Count,
					"stage %q must not exceed %q", stages[i].Name, stages[i-1].Name)
			}
		})
	}
}

func TestFunnelDegenerateDatasetStillReturns(t *testing.T) {
	// A single video normalizes to a viral score of 100, so the viral stage
	// can exceed the high-engagement stage. That is surfaced, not rejected.
	ds := model.Dataset{
		{ID: "only", Views: 5000, Likes: 100, Comments: 10, EngagementRate: 2.2},
	}
	require.NoError(t, Enrich(ds))

	stages, err := Funnel(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, stages[0].Count)
	assert.Equal(t, 0, stages[1].Count, "no video beats the mean of itself")
	assert.Equal(t, 1, stages[3].Count)
}

func TestFunnelHighEngagementRequiresAboveAvgViews(t *testing.T) {
	// High engagement but below-average views must not count in stage 3.
	ds := model.Dataset{
		{ID: "big", Views: 10_000, Likes: 100, Comments: 0, EngagementRate: 1},
		{ID: "small", Views: 100, Likes: 90, Comments: 5, EngagementRate: 95},
	}
	require.NoError(t, Enrich(ds))

	stages, err := Funnel(ds)
	require.NoError(t, err)

	assert.Equal(t, 1, stages[1].Count, "only the big video is above mean views")
	assert.Equal(t, 0, stages[2].Count, "the big video's engagement is below the mean")
}

func TestFunnelEmptyDataset(t *testing.T) {
	_, err := Funnel(model.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
