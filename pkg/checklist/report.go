package checklist

import (
	"fmt"
	"strings"
)

// Text renders the report as plain terminal output.
func (r Report) Text() string {
	var builder strings.Builder
	if r.Title != "" {
		builder.WriteString(r.Title)
		builder.WriteString("\n\n")
	}
	for _, result := range r.Results {
		mark := "FAIL"
		if result.Passed {
			mark = "PASS"
		}
		fmt.Fprintf(&builder, "[%s] %s (%d)", mark, result.Rule.ID, result.Rule.Weight)
		if result.Detail != "" {
			builder.WriteString(": ")
			builder.WriteString(result.Detail)
		}
		builder.WriteByte('\n')
	}
	fmt.Fprintf(&builder, "\nscore: %d/%d (%d%%)\n", r.Score, r.Max, r.Percent())
	return builder.String()
}

// Markdown renders the report as a Markdown table suitable for CI summaries.
func (r Report) Markdown() string {
	var builder strings.Builder
	title := r.Title
	if title == "" {
		title = "Checklist"
	}
	fmt.Fprintf(&builder, "# %s\n\n", title)
	builder.WriteString("| Rule | Weight | Result | Detail |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, result := range r.Results {
		mark := "❌"
		if result.Passed {
			mark = "✅"
		}
		fmt.Fprintf(&builder, "| %s | %d | %s | %s |\n",
			result.Rule.ID, result.Rule.Weight, mark, result.Detail)
	}
	fmt.Fprintf(&builder, "\n**Score: %d/%d (%d%%)**\n", r.Score, r.Max, r.Percent())
	return builder.String()
}
