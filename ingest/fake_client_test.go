package ingest

import (
	"context"
	"fmt"

	"github.com/channelscope/channelscope/client"
	"github.com/channelscope/channelscope/model"
)

// fakeClient implements client.YouTubeClient against an in-memory catalog
// and records every call for assertions.
type fakeClient struct {
	handleIDs map[string]string
	handleErr error

	identity *model.ChannelIdentity

	catalog   []string // full uploads playlist, in order
	pageErrAt int      // fail the Nth PlaylistPage call (1-based), 0 = never

	videos     map[string]client.RawVideo
	batchErrAt int // fail the Nth VideosByID call (1-based), 0 = never

	handleCalls []string
	pageCalls   []pageCall
	batchCalls  [][]string
}

type pageCall struct {
	pageToken  string
	maxResults int64
}

func (f *fakeClient) ResolveHandle(ctx context.Context, handle string) (string, error) {
	f.handleCalls = append(f.handleCalls, handle)
	if f.handleErr != nil {
		return "", f.handleErr
	}
	id, ok := f.handleIDs[handle]
	if !ok {
		return "", fmt.Errorf("no channel matches handle %q", handle)
	}
	return id, nil
}

func (f *fakeClient) ChannelInfo(ctx context.Context, channelID string) (*model.ChannelIdentity, error) {
	if f.identity == nil {
		return nil, fmt.Errorf("%w: %s", client.ErrChannelNotFound, channelID)
	}
	return f.identity, nil
}

// PlaylistPage serves pages from the in-memory catalog using the numeric
// offset as the continuation token, the way an opaque provider token works.
func (f *fakeClient) PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*client.PlaylistPage, error) {
	f.pageCalls = append(f.pageCalls, pageCall{pageToken: pageToken, maxResults: maxResults})
	if f.pageErrAt > 0 && len(f.pageCalls) == f.pageErrAt {
		return nil, fmt.Errorf("backend unavailable")
	}

	offset := 0
	if pageToken != "" {
		fmt.Sscanf(pageToken, "tok-%d", &offset)
	}

	end := offset + int(maxResults)
	if end > len(f.catalog) {
		end = len(f.catalog)
	}

	page := &client.PlaylistPage{VideoIDs: f.catalog[offset:end]}
	if end < len(f.catalog) {
		page.NextPageToken = fmt.Sprintf("tok-%d", end)
	}
	return page, nil
}

func (f *fakeClient) VideosByID(ctx context.Context, ids []string) ([]client.RawVideo, error) {
	f.batchCalls = append(f.batchCalls, ids)
	if f.batchErrAt > 0 && len(f.batchCalls) == f.batchErrAt {
		return nil, fmt.Errorf("quota exceeded")
	}

	out := make([]client.RawVideo, 0, len(ids))
	for _, id := range ids {
		if raw, ok := f.videos[id]; ok {
			out = append(out, raw)
		}
	}
	return out, nil
}

// catalogOf builds n sequential video IDs ("v000", "v001", ...).
func catalogOf(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%03d", i)
	}
	return ids
}

// videosFor fabricates a plain raw record for every catalog ID.
func videosFor(ids []string) map[string]client.RawVideo {
	videos := make(map[string]client.RawVideo, len(ids))
	for i, id := range ids {
		videos[id] = client.RawVideo{
			ID:          id,
			Title:       fmt.Sprintf("Video %d", i),
			PublishedAt: "2024-03-01T12:00:00Z",
			Duration:    "PT5M",
			CategoryID:  "20",
			Views:       int64(1000 + i),
			Likes:       int64(100 + i),
			Comments:    int64(10 + i),
		}
	}
	return videos
}
