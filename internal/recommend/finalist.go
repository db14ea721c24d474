package recommend

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"movierec-backend/internal/catalog"
	"movierec-backend/internal/llm"
	"movierec-backend/internal/shared/telemetry"
)

// FallbackReason is the fixed rationale attached when the oracle's answer
// could not be used and the first candidate is substituted.
const FallbackReason = "AI 응답을 해석하지 못해 후보 목록에서 가장 인기 있는 작품을 기본으로 골랐어요."

const oracleOverviewLimit = 200

// Finalist is the single movie picked from the candidate list.
type Finalist struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	Fallback bool   `json:"fallback"`
}

// flexID tolerates the id arriving as a JSON number or a quoted integer;
// anything else fails the unmarshal and triggers the fallback.
type flexID int

func (id *flexID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*id = flexID(n)
	return nil
}

type oracleReply struct {
	ID     flexID `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// SelectFinalist asks the oracle to pick one candidate, calling it at most
// once. Any failure — transport, malformed payload, missing fields, or an id
// outside the candidate list — resolves deterministically to the first
// candidate with FallbackReason. With no candidates there is nothing to pick
// and no call is made.
func SelectFinalist(ctx context.Context, oracle llm.Client, apiKey, situation, moodLabel string, candidates []catalog.Movie) *Finalist {
	if len(candidates) == 0 {
		return nil
	}

	input := llm.PickInput{
		APIKey:     apiKey,
		Situation:  situation,
		MoodLabel:  moodLabel,
		Candidates: trimCandidates(candidates),
	}

	raw, err := oracle.PickFinalist(ctx, input)
	if err != nil {
		return fallback(candidates, "oracle call failed", err.Error())
	}

	var reply oracleReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return fallback(candidates, "oracle reply not parseable", string(raw))
	}
	if reply.ID == 0 || strings.TrimSpace(reply.Title) == "" || strings.TrimSpace(reply.Reason) == "" {
		return fallback(candidates, "oracle reply missing required fields", string(raw))
	}

	for _, cand := range candidates {
		if cand.ID == int(reply.ID) {
			return &Finalist{ID: cand.ID, Title: cand.Title, Reason: strings.TrimSpace(reply.Reason)}
		}
	}
	// Picking outside the supplied list is a contract violation, treated the
	// same as a parse failure.
	return fallback(candidates, "oracle picked id outside candidate list", strconv.Itoa(int(reply.ID)))
}

func fallback(candidates []catalog.Movie, why, detail string) *Finalist {
	telemetry.Info("finalist.fallback", map[string]any{
		"reason": why,
		"detail": detail,
	})
	first := candidates[0]
	return &Finalist{ID: first.ID, Title: first.Title, Reason: FallbackReason, Fallback: true}
}

func trimCandidates(candidates []catalog.Movie) []llm.Candidate {
	out := make([]llm.Candidate, 0, len(candidates))
	for _, m := range candidates {
		overview := m.Overview
		if utf8.RuneCountInString(overview) > oracleOverviewLimit {
			overview = catalog.TruncateOverview(overview, oracleOverviewLimit)
		}
		out = append(out, llm.Candidate{
			ID:          m.ID,
			Title:       m.Title,
			Rating:      m.Rating,
			VoteCount:   m.VoteCount,
			ReleaseDate: m.ReleaseDate,
			Overview:    overview,
		})
	}
	return out
}
