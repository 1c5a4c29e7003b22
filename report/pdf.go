// Package report renders the summary artifacts a session produces: a
// compact PDF report and a CSV export of the dataset. Everything here is
// derived from already-computed aggregates; no metric is recomputed.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"github.com/channelscope/channelscope/metrics"
)

// WritePDF renders the one-page analytics report to path: channel name,
// video/view/subscriber counts, and the top-performing video title.
func WritePDF(path string, s *metrics.Summary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "YouTube Analytics Report")
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Channel: "+s.DisplayName)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total Videos: %d", s.TotalVideos))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Total Views: "+FormatCount(s.TotalViews))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Subscribers: "+SubscriberDisplay(s.Subscribers))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Top Performing Video:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, truncate(s.TopVideoTitle, 70))

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "Generated via channelscope")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}

	log.Info().Str("path", path).Msg("Wrote PDF report")
	return nil
}

// FormatCount renders a counter in compact B/M/K notation.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// SubscriberDisplay renders a subscriber count, or "Hidden" when the channel
// does not expose it.
func SubscriberDisplay(subscribers *int64) string {
	if subscribers == nil {
		return "Hidden"
	}
	return FormatCount(*subscribers)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
