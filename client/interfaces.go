// Package client provides access to the YouTube Data API for channel
// resolution, catalog pagination, and bulk video lookup.
package client

import (
	"context"
	"errors"

	"github.com/channelscope/channelscope/model"
)

// ErrChannelNotFound is returned when a channel ID resolves to no content on
// the provider side (deleted, suspended, or never existed).
var ErrChannelNotFound = errors.New("channel not found")

// PlaylistPage is one page of a playlist listing together with the opaque
// continuation token for the next page. An empty NextPageToken means the end
// of the catalog.
type PlaylistPage struct {
	VideoIDs      []string
	NextPageToken string
}

// RawVideo carries the provider fields a video record is normalized from.
// Counter fields are zero when the video has statistics disabled.
type RawVideo struct {
	ID          string
	Title       string
	PublishedAt string
	Duration    string
	CategoryID  string
	Views       int64
	Likes       int64
	Comments    int64
}

// YouTubeClient defines the remote operations the ingestion layer needs.
// Implementations must be safe for sequential use within a session.
type YouTubeClient interface {
	// ResolveHandle looks up a channel ID by its @handle (without the "@").
	ResolveHandle(ctx context.Context, handle string) (string, error)

	// ChannelInfo retrieves the identity of a channel by canonical ID,
	// including its uploads playlist. Returns ErrChannelNotFound when the
	// provider has no record of the channel.
	ChannelInfo(ctx context.Context, channelID string) (*model.ChannelIdentity, error)

	// PlaylistPage fetches one page of video IDs from a playlist.
	PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*PlaylistPage, error)

	// VideosByID fetches raw metadata for up to 50 video IDs in one call.
	VideosByID(ctx context.Context, ids []string) ([]RawVideo, error)
}
