package ingest

import "errors"

// ErrResolutionFailed means a user-supplied reference could not be mapped to
// a channel identity, either because no rule matched or because the handle
// lookup itself errored. The offending reference is echoed in the message.
var ErrResolutionFailed = errors.New("channel reference resolution failed")

// ErrIngestionFailed means a paginated or bulk remote call failed
// irrecoverably mid-session. Without best-effort mode no partial dataset is
// returned, since downstream metrics would silently run over a biased sample.
var ErrIngestionFailed = errors.New("catalog ingestion failed")
