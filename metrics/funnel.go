package metrics

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/channelscope/channelscope/model"
)

// FunnelStage is one stage of the performance funnel.
type FunnelStage struct {
	Name  string
	Count int
}

// Funnel computes the video performance funnel: all videos, those with
// above-average views, those above average in both views and engagement, and
// those with a viral score over the threshold. The high-engagement stage
// requires above-average views, so each stage count is at most the previous
// one; the invariant is checked rather than assumed.
func Funnel(ds model.Dataset) ([]FunnelStage, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}

	avgViews := meanViews(ds)
	avgEngagement := meanEngagement(ds)

	var aboveViews, highEngagement, viral int
	for i := range ds {
		overViews := float64(ds[i].Views) > avgViews
		if overViews {
			aboveViews++
		}
		if overViews && ds[i].EngagementRate > avgEngagement {
			highEngagement++
		}
		if ds[i].ViralScore > ViralThreshold {
			viral++
		}
	}

	stages := []FunnelStage{
		{Name: "Total Videos", Count: len(ds)},
		{Name: "Above Avg Views", Count: aboveViews},
		{Name: "High Engagement", Count: highEngagement},
		{Name: fmt.Sprintf("Viral Score > %.0f", ViralThreshold), Count: viral},
	}

	// The first three stages narrow by construction; a violation there is a
	// computation bug, not a data property.
	for i := 1; i < 3; i++ {
		if stages[i].Count > stages[i-1].Count {
			return nil, fmt.Errorf("funnel stage %q (%d) exceeds %q (%d)",
				stages[i].Name, stages[i].Count, stages[i-1].Name, stages[i-1].Count)
		}
	}
	// The viral stage intersects nothing above it. Degenerate datasets (all
	// raw scores equal, so every video normalizes to 100) can legitimately
	// break the ordering, so that gets surfaced but not rejected.
	if stages[3].Count > stages[2].Count {
		log.Warn().
			Int("viral", stages[3].Count).
			Int("high_engagement", stages[2].Count).
			Msg("Viral stage exceeds high-engagement stage")
	}

	return stages, nil
}
