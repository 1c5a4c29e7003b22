package metrics

import (
	"fmt"
	"sort"

	"github.com/channelscope/channelscope/model"
)

// PeriodCount is an upload count for one calendar period.
type PeriodCount struct {
	Period string
	Count  int
}

// PeriodViews is a view sum for one calendar period.
type PeriodViews struct {
	Period string
	Views  int64
}

// MonthlyUploads groups videos by calendar month ("2006-01") and counts
// uploads per month, ordered by period. Records whose publish timestamp
// failed to parse are excluded from temporal aggregates but remain in the
// dataset for every other metric.
func MonthlyUploads(ds model.Dataset) []PeriodCount {
	counts := make(map[string]int)
	for i := range ds {
		if !ds[i].PublishedValid {
			continue
		}
		counts[ds[i].PublishedAt.Format("2006-01")]++
	}
	return sortedCounts(counts)
}

// WeeklyViews groups videos by ISO calendar week ("2006-W02") and sums views
// per week, ordered by period. Unparsable timestamps are excluded.
func WeeklyViews(ds model.Dataset) []PeriodViews {
	views := make(map[string]int64)
	for i := range ds {
		if !ds[i].PublishedValid {
			continue
		}
		year, week := ds[i].PublishedAt.ISOWeek()
		views[fmt.Sprintf("%04d-W%02d", year, week)] += ds[i].Views
	}

	periods := make([]string, 0, len(views))
	for p := range views {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]PeriodViews, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodViews{Period: p, Views: views[p]})
	}
	return out
}

// BucketStats summarizes one classification bucket.
type BucketStats struct {
	Count     int
	MeanViews float64
}

// ShortsVsLong compares mean views per classification bucket. An empty
// bucket reports zero, never NaN.
func ShortsVsLong(ds model.Dataset) (shorts, long BucketStats) {
	var shortViews, longViews int64
	for i := range ds {
		if ds[i].Classification == model.ClassificationShort {
			shorts.Count++
			shortViews += ds[i].Views
		} else {
			long.Count++
			longViews += ds[i].Views
		}
	}
	if shorts.Count > 0 {
		shorts.MeanViews = float64(shortViews) / float64(shorts.Count)
	}
	if long.Count > 0 {
		long.MeanViews = float64(longViews) / float64(long.Count)
	}
	return shorts, long
}

// CategoryShare is the view share of one content category.
type CategoryShare struct {
	Category string
	Views    int64
	Share    float64 // percentage of total views, rounded to 2 decimals
}

// CategoryViews sums views per resolved category and reports each category's
// share of the total, ordered by views descending (ties by name for a stable
// order).
func CategoryViews(ds model.Dataset) []CategoryShare {
	views := make(map[string]int64)
	var total int64
	for i := range ds {
		views[ds[i].Category] += ds[i].Views
		total += ds[i].Views
	}

	out := make([]CategoryShare, 0, len(views))
	for cat, v := range views {
		share := 0.0
		if total > 0 {
			share = round2(float64(v) / float64(total) * 100)
		}
		out = append(out, CategoryShare{Category: cat, Views: v, Share: share})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopByViews returns the n most-viewed videos as a sorted copy; the input
// dataset keeps its fetch order.
func TopByViews(ds model.Dataset, n int) model.Dataset {
	return topBy(ds, n, func(a, b *model.VideoRecord) bool { return a.Views > b.Views })
}

// TopByViralScore returns the n highest-scoring videos as a sorted copy.
func TopByViralScore(ds model.Dataset, n int) model.Dataset {
	return topBy(ds, n, func(a, b *model.VideoRecord) bool { return a.ViralScore > b.ViralScore })
}

func topBy(ds model.Dataset, n int, less func(a, b *model.VideoRecord) bool) model.Dataset {
	sorted := make(model.Dataset, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool { return less(&sorted[i], &sorted[j]) })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// PerformanceBand classifies a channel's average viral score.
type PerformanceBand string

const (
	BandStrong PerformanceBand = "strong"
	BandStable PerformanceBand = "stable"
	BandWeak   PerformanceBand = "weak"
)

// AverageViralScore returns the dataset's mean normalized viral score and
// its performance band (above 70 strong, above 50 stable, weak otherwise).
func AverageViralScore(ds model.Dataset) (float64, PerformanceBand, error) {
	if len(ds) == 0 {
		return 0, BandWeak, ErrEmptyDataset
	}
	var sum float64
	for i := range ds {
		sum += ds[i].ViralScore
	}
	avg := round2(sum / float64(len(ds)))

	switch {
	case avg > 70:
		return avg, BandStrong, nil
	case avg > 50:
		return avg, BandStable, nil
	default:
		return avg, BandWeak, nil
	}
}

// RevenueInsights reports the estimated-revenue extremes and mean over the
// enriched dataset. Estimates are heuristic RPM products, nothing more.
type RevenueInsights struct {
	Top     model.VideoRecord
	Bottom  model.VideoRecord
	Average float64
}

// Revenue summarizes the estimated-revenue distribution.
func Revenue(ds model.Dataset) (*RevenueInsights, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}

	ins := &RevenueInsights{Top: ds[0], Bottom: ds[0]}
	var sum float64
	for i := range ds {
		sum += ds[i].EstimatedRevenue
		if ds[i].EstimatedRevenue > ins.Top.EstimatedRevenue {
			ins.Top = ds[i]
		}
		if ds[i].EstimatedRevenue < ins.Bottom.EstimatedRevenue {
			ins.Bottom = ds[i]
		}
	}
	ins.Average = round2(sum / float64(len(ds)))
	return ins, nil
}

// VideoComparison contrasts a single video with the channel averages, for
// per-video deep dives.
type VideoComparison struct {
	Video          model.VideoRecord
	AvgViews       float64
	AvgLikes       float64
	AvgComments    float64
	AboveAvgViews  bool
	AboveAvgEngage bool
}

// CompareToAverage builds the deep-dive comparison for the video with the
// given ID. Returns ErrEmptyDataset on an empty dataset and a plain error
// when the ID is not in it.
func CompareToAverage(ds model.Dataset, videoID string) (*VideoComparison, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}

	var target *model.VideoRecord
	var likeSum, commentSum int64
	for i := range ds {
		likeSum += ds[i].Likes
		commentSum += ds[i].Comments
		if ds[i].ID == videoID {
			target = &ds[i]
		}
	}
	if target == nil {
		return nil, fmt.Errorf("video %s is not in the dataset", videoID)
	}

	n := float64(len(ds))
	cmp := &VideoComparison{
		Video:       *target,
		AvgViews:    meanViews(ds),
		AvgLikes:    float64(likeSum) / n,
		AvgComments: float64(commentSum) / n,
	}
	cmp.AboveAvgViews = float64(target.Views) > cmp.AvgViews
	cmp.AboveAvgEngage = target.EngagementRate > meanEngagement(ds)
	return cmp, nil
}

func sortedCounts(counts map[string]int) []PeriodCount {
	periods := make([]string, 0, len(counts))
	for p := range counts {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]PeriodCount, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodCount{Period: p, Count: counts[p]})
	}
	return out
}
