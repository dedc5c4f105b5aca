package searchconsole

// Summary holds totals and weighted averages for a set of rows.
// AvgCTR is a ratio in [0,1]; callers multiply by 100 for display.
type Summary struct {
	TotalClicks      int64   `json:"total_clicks"`
	TotalImpressions int64   `json:"total_impressions"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgPosition      float64 `json:"avg_position"`
}

// Aggregate computes summary metrics for a row set.
// PURE business logic (NO http / NO storage)
//
// AvgPosition is the impressions-weighted mean: a rank only counts in
// proportion to how often the site actually appeared at it.
func Aggregate(rows []SearchRow) Summary {
	var s Summary
	var weightedPosition float64

	for _, row := range rows {
		s.TotalClicks += row.Clicks
		s.TotalImpressions += row.Impressions
		weightedPosition += row.Position * float64(row.Impressions)
	}

	if s.TotalImpressions > 0 {
		s.AvgCTR = float64(s.TotalClicks) / float64(s.TotalImpressions)
		s.AvgPosition = weightedPosition / float64(s.TotalImpressions)
	}

	return s
}
