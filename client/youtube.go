package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/channelscope/channelscope/model"
)

// DataAPIClient implements YouTubeClient on top of the YouTube Data API v3.
type DataAPIClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewDataAPIClient creates a new YouTube Data API client.
func NewDataAPIClient(apiKey string) (*DataAPIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &DataAPIClient{apiKey: apiKey}, nil
}

// Connect establishes a connection to the YouTube API.
func (c *DataAPIClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	return nil
}

// ResolveHandle looks up a channel ID via the forHandle parameter.
func (c *DataAPIClient) ResolveHandle(ctx context.Context, handle string) (string, error) {
	if c.service == nil {
		return "", fmt.Errorf("YouTube client not connected")
	}

	log.Debug().Str("handle", handle).Msg("Resolving channel handle")

	var response *ytapi.ChannelListResponse
	err := withRetry(ctx, "channels.list forHandle", func() error {
		var err error
		response, err = c.service.Channels.List([]string{"id"}).
			ForHandle(handle).
			MaxResults(1).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return "", fmt.Errorf("handle lookup for %q failed: %w", handle, err)
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel matches handle %q", handle)
	}

	return response.Items[0].Id, nil
}

// ChannelInfo retrieves the channel identity, including the uploads playlist
// ID and subscriber visibility.
func (c *DataAPIClient) ChannelInfo(ctx context.Context, channelID string) (*model.ChannelIdentity, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("channel_id", channelID).Msg("Fetching channel info")

	var response *ytapi.ChannelListResponse
	err := withRetry(ctx, "channels.list", func() error {
		var err error
		response, err = c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(channelID).
			MaxResults(1).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	item := response.Items[0]
	identity := &model.ChannelIdentity{
		ID:            item.Id,
		DisplayName:   item.Snippet.Title,
		UploadsListID: item.ContentDetails.RelatedPlaylists.Uploads,
	}

	if item.Statistics != nil {
		identity.ViewCount = int64(item.Statistics.ViewCount)
		identity.VideoCount = int64(item.Statistics.VideoCount)
		if !item.Statistics.HiddenSubscriberCount {
			subs := int64(item.Statistics.SubscriberCount)
			identity.SubscriberCount = &subs
		}
	}

	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
		identity.ThumbnailURL = item.Snippet.Thumbnails.High.Url
	}

	log.Info().
		Str("channel_id", identity.ID).
		Str("title", identity.DisplayName).
		Int64("view_count", identity.ViewCount).
		Int64("video_count", identity.VideoCount).
		Bool("subscribers_hidden", identity.SubscribersHidden()).
		Msg("Channel info retrieved")

	return identity, nil
}

// PlaylistPage fetches one page of video IDs from the uploads playlist.
func (c *DataAPIClient) PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*PlaylistPage, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	call := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	var response *ytapi.PlaylistItemListResponse
	err := withRetry(ctx, "playlistItems.list", func() error {
		var err error
		response, err = call.Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist %s: %w", playlistID, err)
	}

	page := &PlaylistPage{
		VideoIDs:      make([]string, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}

	return page, nil
}

// VideosByID fetches raw metadata and statistics for a batch of video IDs.
func (c *DataAPIClient) VideosByID(ctx context.Context, ids []string) ([]RawVideo, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	var response *ytapi.VideoListResponse
	err := withRetry(ctx, "videos.list", func() error {
		var err error
		response, err = c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(ids...).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	videos := make([]RawVideo, 0, len(response.Items))
	for _, item := range response.Items {
		raw := RawVideo{ID: item.Id}

		if item.Snippet != nil {
			raw.Title = item.Snippet.Title
			raw.PublishedAt = item.Snippet.PublishedAt
			raw.CategoryID = item.Snippet.CategoryId
		}
		if item.ContentDetails != nil {
			raw.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			raw.Views = int64(item.Statistics.ViewCount)
			raw.Likes = int64(item.Statistics.LikeCount)
			raw.Comments = int64(item.Statistics.CommentCount)
		}

		videos = append(videos, raw)
	}

	return videos, nil
}
