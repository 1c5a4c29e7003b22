// Package metrics computes derived per-video fields and channel-level
// aggregates over a normalized dataset. Everything here is a pure function
// of its input: no remote calls, no randomness, no wall-clock reads.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/channelscope/channelscope/model"
)

// ErrEmptyDataset means normalization produced zero records. Ratio-based
// aggregates are undefined in that case and must fail fast rather than leak
// NaN values into a report.
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrZeroSignal means every record in the dataset has a zero raw viral
// score, so score normalization is undefined.
var ErrZeroSignal = errors.New("dataset has no viral signal")

// Viral score weights. Policy choices, not physical constants; kept together
// so they can be tuned without touching the engine.
const (
	viralViewWeight    = 0.60
	viralLikeWeight    = 0.30
	viralCommentWeight = 0.10
)

// ViralThreshold is the normalized score a video must exceed to count as
// viral in the performance funnel.
const ViralThreshold = 80.0

// viralScoreRaw is the unnormalized weighted composite of a video's counters.
func viralScoreRaw(v *model.VideoRecord) float64 {
	return viralViewWeight*float64(v.Views) +
		viralLikeWeight*float64(v.Likes) +
		viralCommentWeight*float64(v.Comments)
}

// Enrich populates the derived metric fields of every record in place: raw
// and normalized viral scores and the estimated revenue. The revenue figure
// is a heuristic RPM-based estimate, not a financial calculation. Fails with
// ErrEmptyDataset on an empty dataset and ErrZeroSignal when every raw score
// is zero, since normalization divides by the dataset maximum.
func Enrich(ds model.Dataset) error {
	if len(ds) == 0 {
		return ErrEmptyDataset
	}

	var maxRaw float64
	for i := range ds {
		raw := viralScoreRaw(&ds[i])
		ds[i].ViralScoreRaw = raw
		if raw > maxRaw {
			maxRaw = raw
		}
	}
	if maxRaw == 0 {
		return fmt.Errorf("%w: every raw viral score is 0", ErrZeroSignal)
	}

	for i := range ds {
		ds[i].ViralScore = round2(ds[i].ViralScoreRaw / maxRaw * 100)
		ds[i].EstimatedRevenue = float64(ds[i].Views) / 1000 * model.CategoryRPM(ds[i].Category)
	}

	return nil
}

// Summary is the channel-level scalar contract handed to the presentation
// layer. It is derived entirely from the enriched dataset and the resolved
// identity; consumers must not reach back into ingestion internals.
type Summary struct {
	ChannelID   string
	DisplayName string
	// Subscribers is nil when the channel hides the count.
	Subscribers *int64

	TotalVideos       int
	TotalViews        int64
	AverageViews      float64
	AverageEngagement float64

	TopVideoID    string
	TopVideoTitle string
	TopVideoViews int64
}

// Summarize computes the channel KPI scalars from an enriched dataset.
func Summarize(identity *model.ChannelIdentity, ds model.Dataset) (*Summary, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &Summary{
		ChannelID:   identity.ID,
		DisplayName: identity.DisplayName,
		Subscribers: identity.SubscriberCount,
		TotalVideos: len(ds),
	}

	var engagementSum float64
	top := &ds[0]
	for i := range ds {
		s.TotalViews += ds[i].Views
		engagementSum += ds[i].EngagementRate
		if ds[i].Views > top.Views {
			top = &ds[i]
		}
	}

	s.AverageViews = float64(s.TotalViews) / float64(len(ds))
	s.AverageEngagement = round2(engagementSum / float64(len(ds)))
	s.TopVideoID = top.ID
	s.TopVideoTitle = top.Title
	s.TopVideoViews = top.Views

	return s, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func meanViews(ds model.Dataset) float64 {
	if len(ds) == 0 {
		return 0
	}
	var sum int64
	for i := range ds {
		sum += ds[i].Views
	}
	return float64(sum) / float64(len(ds))
}

func meanEngagement(ds model.Dataset) float64 {
	if len(ds) == 0 {
		return 0
	}
	var sum float64
	for i := range ds {
		sum += ds[i].EngagementRate
	}
	return sum / float64(len(ds))
}
