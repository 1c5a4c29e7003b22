// Package pipeline runs one analysis session end to end: reference
// resolution, catalog ingestion, record normalization, and metric
// computation. Stages run sequentially; each session owns its dataset and
// nothing persists between sessions.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/channelscope/channelscope/client"
	"github.com/channelscope/channelscope/config"
	"github.com/channelscope/channelscope/ingest"
	"github.com/channelscope/channelscope/metrics"
	"github.com/channelscope/channelscope/model"
)

// Result is everything a session produces for the presentation layer: the
// resolved identity, the enriched dataset, and the channel KPI scalars.
type Result struct {
	SessionID string
	Identity  *model.ChannelIdentity
	Dataset   model.Dataset
	Summary   *metrics.Summary
}

// Run analyzes the channel named by reference. Any irrecoverable remote
// failure abandons the whole session; there is no partial or resumable
// state, a new session rebuilds from scratch.
func Run(ctx context.Context, c client.YouTubeClient, reference string, cfg *config.Config) (*Result, error) {
	sessionID := uuid.NewString()
	logger := log.With().Str("session_id", sessionID).Logger()

	logger.Info().
		Str("reference", reference).
		Int("max_videos", cfg.MaxVideos).
		Bool("best_effort", cfg.BestEffort).
		Msg("Starting analysis session")

	channelID, err := ingest.Resolve(ctx, c, reference)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("channel_id", channelID).Msg("Resolved channel reference")

	identity, err := c.ChannelInfo(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load channel %s: %w", channelID, err)
	}

	videoIDs, err := ingest.ListUploadIDs(ctx, c, identity.UploadsListID, cfg.MaxVideos, cfg.BestEffort)
	if err != nil {
		return nil, err
	}

	dataset, err := ingest.FetchAndNormalize(ctx, c, videoIDs, ingest.NormalizeOptions{
		BestEffort: cfg.BestEffort,
	})
	if err != nil {
		return nil, err
	}

	if err := metrics.Enrich(dataset); err != nil {
		return nil, err
	}

	summary, err := metrics.Summarize(identity, dataset)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("channel", identity.DisplayName).
		Int("videos", summary.TotalVideos).
		Int64("total_views", summary.TotalViews).
		Float64("avg_engagement", summary.AverageEngagement).
		Msg("Analysis session complete")

	return &Result{
		SessionID: sessionID,
		Identity:  identity,
		Dataset:   dataset,
		Summary:   summary,
	}, nil
}
