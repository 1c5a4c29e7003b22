package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUploadIDsSinglePageForSmallLimit(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(200)}

	ids, err := ListUploadIDs(context.Background(), f, "UU123", 30, false)
	require.NoError(t, err)

	assert.Len(t, ids, 30)
	assert.Equal(t, "v000", ids[0])
	assert.Equal(t, "v029", ids[29])

	// limit=30 fits in one page; fetching more would waste quota.
	require.Len(t, f.pageCalls, 1)
	assert.Equal(t, int64(30), f.pageCalls[0].maxResults)
}

func TestListUploadIDsFollowsContinuationTokens(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(200)}

	ids, err := ListUploadIDs(context.Background(), f, "UU123", 120, false)
	require.NoError(t, err)

	assert.Len(t, ids, 120)
	require.Len(t, f.pageCalls, 3)
	assert.Equal(t, "", f.pageCalls[0].pageToken)
	assert.Equal(t, int64(50), f.pageCalls[0].maxResults)
	assert.Equal(t, int64(50), f.pageCalls[1].maxResults)
	assert.Equal(t, int64(20), f.pageCalls[2].maxResults)

	// Fetch order is preserved.
	assert.Equal(t, "v050", ids[50])
	assert.Equal(t, "v119", ids[119])
}

func TestListUploadIDsStopsAtEndOfCatalog(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(70)}

	ids, err := ListUploadIDs(context.Background(), f, "UU123", 500, false)
	require.NoError(t, err)

	assert.Len(t, ids, 70)
	assert.Len(t, f.pageCalls, 2)
}

func TestListUploadIDsEmptyCatalog(t *testing.T) {
	f := &fakeClient{catalog: nil}

	ids, err := ListUploadIDs(context.Background(), f, "UU123", 100, false)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListUploadIDsPartialFailureIsFatal(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(200), pageErrAt: 2}

	_, err := ListUploadIDs(context.Background(), f, "UU123", 120, false)
	require.Error(t, err)
	// A silently truncated catalog would bias every downstream metric.
	assert.ErrorIs(t, err, ErrIngestionFailed)
}

func TestListUploadIDsBestEffortKeepsPartial(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(200), pageErrAt: 2}

	ids, err := ListUploadIDs(context.Background(), f, "UU123", 120, true)
	require.NoError(t, err)
	assert.Len(t, ids, 50, "only the first page completed")
}

func TestListUploadIDsRejectsNonPositiveLimit(t *testing.T) {
	f := &fakeClient{catalog: catalogOf(10)}

	_, err := ListUploadIDs(context.Background(), f, "UU123", 0, false)
	assert.Error(t, err)
}
