package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/channelscope/channelscope/model"
)

var csvHeader = []string{
	"VideoID", "Title", "Category", "Type", "Published",
	"Views", "Likes", "Comments", "Engagement (%)", "Duration (mins)",
	"Viral Score", "Estimated Revenue", "URL",
}

// WriteCSV exports the enriched dataset as CSV, one row per video in fetch
// order.
func WriteCSV(w io.Writer, ds model.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range ds {
		v := &ds[i]
		published := ""
		if v.PublishedValid {
			published = v.PublishedAt.Format("2006-01-02")
		}
		row := []string{
			v.ID,
			v.Title,
			v.Category,
			string(v.Classification),
			published,
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Comments, 10),
			strconv.FormatFloat(v.EngagementRate, 'f', 3, 64),
			strconv.FormatFloat(v.DurationMinutes, 'f', 2, 64),
			strconv.FormatFloat(v.ViralScore, 'f', 2, 64),
			strconv.FormatFloat(v.EstimatedRevenue, 'f', 2, 64),
			v.URL(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", v.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
