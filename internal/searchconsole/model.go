package searchconsole

// SearchRow is one row of search performance data. Keys holds the
// dimension values in the same order the dimensions were requested.
type SearchRow struct {
	Keys        []string `json:"keys"`
	Clicks      int64    `json:"clicks"`
	Impressions int64    `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// SearchAnalytics is one immutable snapshot for a
// (site, date range, dimension set) query.
type SearchAnalytics struct {
	Rows            []SearchRow `json:"rows"`
	AggregationType string      `json:"responseAggregationType,omitempty"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
}

// Site is one Search Console property the user has access to.
type Site struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}
