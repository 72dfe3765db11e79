package services

// AgentResult is the uniform output of every scoring agent. Results are
// built fresh per call; agents hold no mutable state.
type AgentResult struct {
	AgentName       string   `json:"agent_name"`
	Score           int      `json:"score"` // 0-100
	Findings        []string `json:"findings"`
	Suggestions     []string `json:"suggestions"`
	ExecutionTimeMs int64    `json:"execution_time_ms"`
}

// KeywordMatchResult extends AgentResult with the matched and missing
// keyword lists as typed data, so downstream consumers never have to parse
// them back out of the findings text.
type KeywordMatchResult struct {
	AgentResult
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
