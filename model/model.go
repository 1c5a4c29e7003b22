// Package model defines the core data types shared across the analysis
// pipeline: the resolved channel identity, the normalized per-video record,
// and the dataset the metrics engine operates on.
package model

import "time"

// Classification partitions videos by format.
type Classification string

const (
	ClassificationShort Classification = "Short"
	ClassificationLong  Classification = "Long"
)

// ChannelIdentity describes a resolved YouTube channel. It is created once
// per analysis session and treated as immutable afterwards.
type ChannelIdentity struct {
	ID              string
	DisplayName     string
	UploadsListID   string
	SubscriberCount *int64 // nil when the channel hides its subscriber count
	ViewCount       int64
	VideoCount      int64
	ThumbnailURL    string
}

// SubscribersHidden reports whether the channel hides its subscriber count.
func (c *ChannelIdentity) SubscribersHidden() bool {
	return c.SubscriberCount == nil
}

// VideoRecord is one normalized row of the channel dataset. The ingest layer
// fills everything up to EngagementRate; the metrics engine populates the
// viral score and revenue fields in place.
type VideoRecord struct {
	ID              string
	Title           string
	PublishedAtRaw  string
	PublishedAt     time.Time
	PublishedValid  bool // false when PublishedAtRaw failed to parse
	DurationMinutes float64
	Views           int64
	Likes           int64
	Comments        int64
	CategoryID      string
	Category        string
	Classification  Classification

	// Derived metrics, populated by metrics.Enrich.
	EngagementRate   float64
	ViralScoreRaw    float64
	ViralScore       float64
	EstimatedRevenue float64
}

// URL returns the short-form watch URL for the video.
func (v *VideoRecord) URL() string {
	return "https://youtu.be/" + v.ID
}

// ThumbnailURL returns the standard high-quality thumbnail URL.
func (v *VideoRecord) ThumbnailURL() string {
	return "https://i.ytimg.com/vi/" + v.ID + "/hqdefault.jpg"
}

// Dataset is the ordered sequence of normalized records for one session.
// Insertion order is fetch order; aggregations other than the temporal
// groupings do not depend on it.
type Dataset []VideoRecord
