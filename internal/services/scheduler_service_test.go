package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhiren/talenthub/internal/utils"
)

type scriptedProvider struct {
	reply string
	err   error
}

func (p *scriptedProvider) Complete(context.Context, string) (string, error) {
	return p.reply, p.err
}

func (p *scriptedProvider) Close() error { return nil }

func TestSuggestParsesFencedResponse(t *testing.T) {
	p := &scriptedProvider{reply: "```json\n[{\"date\":\"2026-09-01\",\"time\":\"10:00\",\"duration_minutes\":60,\"type\":\"video\",\"reason\":\"morning slot\"}]\n```"}
	svc := NewSchedulerService(p)

	slots, err := svc.Suggest(context.Background(), SuggestInput{CandidateName: "张伟", JobTitle: "Go 工程师"})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2026-09-01", slots[0].Date)
	assert.Equal(t, 60, slots[0].DurationMinutes)
}

func TestSuggestRequiresFields(t *testing.T) {
	svc := NewSchedulerService(&scriptedProvider{})

	_, err := svc.Suggest(context.Background(), SuggestInput{CandidateName: "张伟"})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSuggestWithoutProvider(t *testing.T) {
	svc := NewSchedulerService(nil)

	_, err := svc.Suggest(context.Background(), SuggestInput{CandidateName: "张伟", JobTitle: "Go 工程师"})
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}

func TestParseSlotsRejectsProse(t *testing.T) {
	_, err := parseSlots("sorry, I cannot help with that")
	assert.Error(t, err)
}
