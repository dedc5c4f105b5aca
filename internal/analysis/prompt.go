package analysis

import (
	"encoding/json"
	"fmt"
)

// marshalData serializes the exact input the caller supplied. The prompt
// must carry the data verbatim, never a re-derived version of it.
func marshalData(data any) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(out)
}

func BuildAnalysisPrompt(data any) string {
	return `Analyze the following Google Search Console data and provide valuable insights.
The data shows search performance including clicks, impressions, CTR, and position for various search queries.

Data:
` + marshalData(data) + `

Please provide:
1. A brief summary of overall performance
2. 3-5 specific insights categorized as:
   - "positive" (strengths or improvements)
   - "opportunity" (areas that could be improved)
   - "info" (neutral but important observations)
3. Top performing queries/pages and why they're successful
4. Recommendations for improvement

Format your response as valid JSON with the following structure:
{
  "summary": "Brief overview of search performance",
  "insights": [
    {
      "type": "positive|opportunity|info",
      "title": "Short insight title",
      "description": "Detailed explanation"
    }
  ],
  "topPerformers": {
    "queries": [{"name": "query", "reason": "why it performs well"}],
    "pages": [{"name": "page", "reason": "why it performs well"}]
  },
  "recommendations": ["recommendation 1", "recommendation 2"]
}`
}

func BuildQueryRecommendationsPrompt(query string, data any) string {
	return fmt.Sprintf(`Analyze this specific search query %q from Google Search Console data:

%s

Provide 3-5 actionable recommendations to improve its performance in search results.
Format your response as a JSON array of strings, each containing one recommendation.`,
		query, marshalData(data))
}

func BuildTrendSummaryPrompt(data any) string {
	return `Analyze these historical search performance metrics from Google Search Console:

` + marshalData(data) + `

Provide a concise paragraph summarizing the performance trends over time.
Focus on changes in clicks, impressions, CTR, and position.
Highlight any significant patterns or anomalies.`
}
