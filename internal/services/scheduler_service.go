package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zhiren/talenthub/internal/providers/llm"
	"github.com/zhiren/talenthub/internal/utils"
)

// SlotSuggestion is one proposed interview slot from the smart scheduler.
type SlotSuggestion struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Type            string `json:"type"`
	Reason          string `json:"reason,omitempty"`
}

type SuggestInput struct {
	CandidateName string   `json:"candidate_name"`
	JobTitle      string   `json:"job_title"`
	Stage         string   `json:"stage"`
	Interviewer   string   `json:"interviewer"`
	BusySlots     []string `json:"busy_slots"` // "YYYY-MM-DD HH:MM" already taken
}

type SchedulerService interface {
	Suggest(ctx context.Context, in SuggestInput) ([]SlotSuggestion, error)
}

type schedulerService struct {
	provider llm.Provider
}

func NewSchedulerService(p llm.Provider) SchedulerService {
	return &schedulerService{provider: p}
}

const suggestPrompt = `You are an interview scheduling assistant for an HR team.
Propose exactly 3 interview slots as a JSON array of objects with the keys
"date" (YYYY-MM-DD), "time" (HH:MM), "duration_minutes", "type", "reason".
Working hours are 09:30-18:00 Asia/Shanghai, Monday to Friday.
Respond with the JSON array only, no prose.

Candidate: %s
Position: %s
Stage: %s
Interviewer: %s
Already booked: %s`

func (s *schedulerService) Suggest(ctx context.Context, in SuggestInput) ([]SlotSuggestion, error) {
	const op = "SchedulerService.Suggest"

	if in.CandidateName == "" || in.JobTitle == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_name and job_title are required", nil)
	}
	if s.provider == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "scheduler provider is not configured", nil)
	}

	busy := "none"
	if len(in.BusySlots) > 0 {
		busy = strings.Join(in.BusySlots, "; ")
	}
	prompt := fmt.Sprintf(suggestPrompt, in.CandidateName, in.JobTitle, in.Stage, in.Interviewer, busy)

	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "scheduler provider failed", err)
	}

	slots, err := parseSlots(raw)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "unparseable scheduler response", err)
	}
	return slots, nil
}

// parseSlots tolerates markdown fences around the JSON array.
func parseSlots(raw string) ([]SlotSuggestion, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "["); i >= 0 {
		if j := strings.LastIndex(raw, "]"); j > i {
			raw = raw[i : j+1]
		}
	}

	var slots []SlotSuggestion
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
