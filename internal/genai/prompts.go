package genai

import "fmt"

const fallbackQuote = "Every checked box counts. Keep going!"

func buildChecklistPrompt(goal string) string {
	return fmt.Sprintf(`The user asked for a checklist for the following goal: %q.
Break the goal into concrete, actionable steps grouped by category.

Respond with valid JSON only, no explanations and no markdown, matching:
{
  "title": "short checklist title",
  "categories": [
    {
      "categoryName": "category label",
      "items": ["step one", "step two"]
    }
  ]
}`, goal)
}

func buildQuotePrompt(progressPct, taskCount int) string {
	return fmt.Sprintf(`The user has completed %d%% of %d open tasks.
Write one short, encouraging sentence for them. Respond with the sentence only.`,
		progressPct, taskCount)
}
