// Package ingest turns a channel reference into a normalized video dataset:
// reference resolution, catalog pagination, and bulk record normalization.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/channelscope/channelscope/client"
)

// Resolve maps a user-supplied channel reference (canonical ID, @handle, or
// URL) to a canonical channel ID. Rules are tried in order and the first
// match wins; the remote handle lookup is only attempted once the cheaper
// path and shape checks have failed to apply.
func Resolve(ctx context.Context, c client.YouTubeClient, reference string) (string, error) {
	ref := strings.TrimSpace(reference)

	// Rule 1: explicit /channel/<id> path segment. The leading slash keeps
	// handles like @mychannel/videos from matching.
	if _, after, found := strings.Cut(ref, "/channel/"); found {
		id, _, _ := strings.Cut(after, "/")
		return id, nil
	}

	// Rule 2: @handle, resolved remotely.
	if _, after, found := strings.Cut(ref, "@"); found {
		handle, _, _ := strings.Cut(after, "/")
		id, err := c.ResolveHandle(ctx, handle)
		if err != nil {
			// Callers must be able to tell "handle lookup errored" apart
			// from "not a handle at all", so the cause stays attached.
			log.Error().Err(err).Str("reference", reference).Msg("Handle lookup failed")
			return "", fmt.Errorf("%w: %q: %w", ErrResolutionFailed, reference, err)
		}
		return id, nil
	}

	// Rule 3: the reference is already a canonical channel ID.
	if strings.HasPrefix(ref, "UC") && len(ref) > 20 {
		return ref, nil
	}

	return "", fmt.Errorf("%w: %q does not look like a channel URL, handle, or ID", ErrResolutionFailed, reference)
}
