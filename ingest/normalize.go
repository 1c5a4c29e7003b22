package ingest

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sosodev/duration"
	"golang.org/x/sync/errgroup"

	"github.com/channelscope/channelscope/client"
	"github.com/channelscope/channelscope/model"
)

// batchSize is the videos.list bulk-lookup ceiling.
const batchSize = 50

// defaultConcurrency bounds how many stats batches are in flight at once.
const defaultConcurrency = 4

// NormalizeOptions tunes FetchAndNormalize.
type NormalizeOptions struct {
	// Concurrency caps in-flight batch lookups; <= 0 uses a default.
	Concurrency int
	// BestEffort keeps the batches that completed when one fails instead of
	// aborting the whole normalization.
	BestEffort bool
}

// FetchAndNormalize fetches raw metadata for the given video IDs in batches
// of 50 and normalizes each record into the uniform dataset shape. Batches
// are fetched concurrently but results are concatenated in input order. A
// failed batch aborts the call with ErrIngestionFailed unless best-effort is
// requested; a malformed field within a record never does, it falls back to
// the documented default instead.
func FetchAndNormalize(ctx context.Context, c client.YouTubeClient, videoIDs []string, opts NormalizeOptions) (model.Dataset, error) {
	if len(videoIDs) == 0 {
		return model.Dataset{}, nil
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	chunks := chunkIDs(videoIDs, batchSize)
	results := make([]model.Dataset, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ids := range chunks {
		g.Go(func() error {
			raws, err := c.VideosByID(gctx, ids)
			if err != nil {
				if opts.BestEffort {
					log.Warn().
						Err(err).
						Int("batch", i).
						Int("batch_size", len(ids)).
						Msg("Stats batch failed, dropping it (best-effort)")
					return nil
				}
				return fmt.Errorf("batch %d (%d videos): %w", i, len(ids), err)
			}

			records := make(model.Dataset, 0, len(raws))
			for _, raw := range raws {
				records = append(records, normalizeRecord(raw))
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIngestionFailed, err)
	}

	dataset := make(model.Dataset, 0, len(videoIDs))
	for _, records := range results {
		dataset = append(dataset, records...)
	}

	log.Info().
		Int("requested", len(videoIDs)).
		Int("normalized", len(dataset)).
		Int("batches", len(chunks)).
		Msg("Normalized video records")

	return dataset, nil
}

// normalizeRecord converts one raw provider record into the uniform row
// shape. Every field is total: missing stats are zero, an unparsable
// duration means zero minutes, and any unmapped category resolves to
// "Unknown". Classification is computed here, once, and never revisited.
func normalizeRecord(raw client.RawVideo) model.VideoRecord {
	rec := model.VideoRecord{
		ID:             raw.ID,
		Title:          raw.Title,
		PublishedAtRaw: raw.PublishedAt,
		Views:          raw.Views,
		Likes:          raw.Likes,
		Comments:       raw.Comments,
		CategoryID:     raw.CategoryID,
		Category:       model.ResolveCategory(raw.CategoryID),
	}

	if ts, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
		rec.PublishedAt = ts
		rec.PublishedValid = true
	} else if raw.PublishedAt != "" {
		log.Debug().Str("video_id", raw.ID).Str("published_at", raw.PublishedAt).Msg("Unparsable publish timestamp")
	}

	rec.DurationMinutes = DurationMinutes(raw.Duration)
	rec.EngagementRate = EngagementRate(rec.Views, rec.Likes, rec.Comments)
	rec.Classification = Classify(rec.DurationMinutes, rec.Title)

	return rec
}

// DurationMinutes converts an ISO-8601 duration string to minutes, rounded
// to 2 decimal places. Empty or unparsable input is treated as PT0S.
func DurationMinutes(iso string) float64 {
	if iso == "" {
		return 0
	}
	d, err := duration.Parse(iso)
	if err != nil {
		log.Debug().Str("duration", iso).Msg("Unparsable ISO-8601 duration, defaulting to 0")
		return 0
	}
	return math.Round(d.ToTimeDuration().Seconds()/60*100) / 100
}

// EngagementRate is (likes + comments) / views as a percentage, rounded to 3
// decimal places, and 0 for a video with no views.
func EngagementRate(views, likes, comments int64) float64 {
	if views <= 0 {
		return 0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*1000) / 1000
}

// Classify labels a video Short when it runs under a minute or its title
// mentions "short", Long otherwise.
func Classify(durationMinutes float64, title string) model.Classification {
	if durationMinutes < 1 || strings.Contains(strings.ToLower(title), "short") {
		return model.ClassificationShort
	}
	return model.ClassificationLong
}

// chunkIDs splits ids into consecutive slices of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
