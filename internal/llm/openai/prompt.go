package openai

import (
	"fmt"
	"strings"

	"movierec-backend/internal/llm"
)

const systemPrompt = `You are a movie recommendation curator. You are given a
viewer's situation, their mood label, and a numbered list of candidate movies.
Pick exactly ONE movie from the list. You must not invent movies or pick an id
that is not in the list. Respond with a JSON object of this exact shape:
{"id": <movie id from the list>, "title": "<its title>", "reason": "<one or two sentences in Korean explaining why it fits the viewer right now>"}`

func buildMessages(input llm.PickInput) []chatMessage {
	var b strings.Builder
	if strings.TrimSpace(input.Situation) != "" {
		fmt.Fprintf(&b, "Viewer situation: %s\n", strings.TrimSpace(input.Situation))
	}
	if strings.TrimSpace(input.MoodLabel) != "" {
		fmt.Fprintf(&b, "Mood label: %s\n", strings.TrimSpace(input.MoodLabel))
	}
	b.WriteString("\nCandidates:\n")
	for i, cand := range input.Candidates {
		fmt.Fprintf(&b, "%d. id=%d title=%q rating=%.1f votes=%d released=%s\n   overview: %s\n",
			i+1, cand.ID, cand.Title, cand.Rating, cand.VoteCount, cand.ReleaseDate, cand.Overview)
	}
	b.WriteString("\nSelection criteria: fit to the viewer's current mood first, then broad appeal. Choose one.")

	return []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
