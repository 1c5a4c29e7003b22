package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/channelscope/channelscope/model"
)

// correlationFields names the numeric fields the matrix spans, in the fixed
// order used for rows and columns.
var correlationFields = []string{
	"views",
	"likes",
	"comments",
	"engagement",
	"duration",
	"viral_score",
}

func fieldValues(ds model.Dataset, field string) []float64 {
	values := make([]float64, len(ds))
	for i := range ds {
		switch field {
		case "views":
			values[i] = float64(ds[i].Views)
		case "likes":
			values[i] = float64(ds[i].Likes)
		case "comments":
			values[i] = float64(ds[i].Comments)
		case "engagement":
			values[i] = ds[i].EngagementRate
		case "duration":
			values[i] = ds[i].DurationMinutes
		case "viral_score":
			values[i] = ds[i].ViralScore
		}
	}
	return values
}

// CorrelationMatrix holds pairwise Pearson correlations across the fixed
// metric fields. Values[i][j] correlates Fields[i] with Fields[j]; the
// diagonal is 1. A zero-variance column yields NaN entries, which consumers
// must skip.
type CorrelationMatrix struct {
	Fields []string
	Values [][]float64
}

// Correlations computes the pairwise Pearson correlation matrix over views,
// likes, comments, engagement rate, duration, and viral score.
func Correlations(ds model.Dataset) (*CorrelationMatrix, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}

	columns := make([][]float64, len(correlationFields))
	for i, field := range correlationFields {
		columns[i] = fieldValues(ds, field)
	}

	m := &CorrelationMatrix{
		Fields: correlationFields,
		Values: make([][]float64, len(correlationFields)),
	}
	for i := range correlationFields {
		m.Values[i] = make([]float64, len(correlationFields))
		for j := range correlationFields {
			if i == j {
				m.Values[i][j] = 1
				continue
			}
			m.Values[i][j] = round2(stat.Correlation(columns[i], columns[j], nil))
		}
	}

	return m, nil
}

// StrongestPair returns the most correlated distinct field pair. The trivial
// diagonal is excluded; NaN entries (zero-variance fields) are skipped; ties
// keep the first pair in the fixed field order.
func (m *CorrelationMatrix) StrongestPair() (first, second string, r float64) {
	r = math.Inf(-1)
	for i := 0; i < len(m.Fields); i++ {
		for j := i + 1; j < len(m.Fields); j++ {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			if v > r {
				first, second, r = m.Fields[i], m.Fields[j], v
			}
		}
	}
	if math.IsInf(r, -1) {
		return "", "", 0
	}
	return first, second, r
}
