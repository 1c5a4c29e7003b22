package ingest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/channelscope/channelscope/client"
)

// pageSize is the maximum playlistItems page the Data API serves per call.
const pageSize = 50

// ListUploadIDs paginates through a channel's uploads playlist and collects
// up to limit video IDs, following the opaque continuation token. It never
// requests more pages than needed to satisfy limit: each call asks for
// min(50, remaining) items. A mid-pagination failure aborts with
// ErrIngestionFailed unless bestEffort is set, in which case the IDs
// accumulated so far are returned.
func ListUploadIDs(ctx context.Context, c client.YouTubeClient, uploadsListID string, limit int, bestEffort bool) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("upload limit must be positive, got %d", limit)
	}

	ids := make([]string, 0, limit)
	pageToken := ""
	pages := 0

	for len(ids) < limit {
		remaining := limit - len(ids)
		want := int64(pageSize)
		if remaining < pageSize {
			want = int64(remaining)
		}

		page, err := c.PlaylistPage(ctx, uploadsListID, pageToken, want)
		if err != nil {
			if bestEffort && len(ids) > 0 {
				log.Warn().
					Err(err).
					Str("playlist_id", uploadsListID).
					Int("collected", len(ids)).
					Msg("Page fetch failed, returning partial catalog (best-effort)")
				return ids, nil
			}
			return nil, fmt.Errorf("%w: page %d of playlist %s: %w", ErrIngestionFailed, pages+1, uploadsListID, err)
		}
		pages++

		if len(page.VideoIDs) == 0 {
			break
		}
		ids = append(ids, page.VideoIDs...)

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	// A page may overshoot the ceiling; the caller gets at most limit IDs.
	if len(ids) > limit {
		ids = ids[:limit]
	}

	log.Info().
		Str("playlist_id", uploadsListID).
		Int("video_count", len(ids)).
		Int("pages", pages).
		Msg("Collected upload IDs")

	return ids, nil
}
