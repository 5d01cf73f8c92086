package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhiren/talenthub/internal/models"
)

var bulkNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestApplyBulkUpdateStatus(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"c1", "c2", "missing"}, ActionUpdateStatus, BulkPayload{Status: "hired"}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 2, res.UpdatedCount)
	require.Len(t, res.Updated, 2)
	for _, c := range res.Updated {
		assert.Equal(t, models.CandidateHired, c.Status)
		assert.Equal(t, bulkNow, c.UpdatedAt)
	}
	// untouched record keeps its status
	assert.Equal(t, models.CandidatePassive, cands[2].Status)
}

func TestApplyBulkUnknownActionRejectsWholeBatch(t *testing.T) {
	cands := sampleCandidates()

	_, err := ApplyBulk(cands, []string{"c1"}, BulkAction("move_to_pool"), BulkPayload{}, bulkNow)

	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, sampleCandidates(), cands, "no record may be touched")
}

func TestApplyBulkOutOfRangeRatingStillCounts(t *testing.T) {
	cands := sampleCandidates()
	before := cands[0].Rating

	for _, bad := range []int{0, 6, -1} {
		res, err := ApplyBulk(cands, []string{"c1"}, ActionUpdateRating, BulkPayload{Rating: bad}, bulkNow)

		require.NoError(t, err)
		assert.Equal(t, 1, res.UpdatedCount, "matched record counts even when rating is rejected")
		assert.Equal(t, before, cands[0].Rating, "rating %d must not be written", bad)
		assert.Equal(t, bulkNow, cands[0].UpdatedAt)
	}
}

func TestApplyBulkValidRating(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"c4"}, ActionUpdateRating, BulkPayload{Rating: 5}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	assert.Equal(t, 5, cands[3].Rating)
}

func TestApplyBulkAddNote(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"c1"}, ActionAddNote, BulkPayload{Note: "电话沟通过，意向强"}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	require.Len(t, cands[0].Notes, 1)
	note := cands[0].Notes[0]
	assert.Equal(t, "1", note.ID)
	assert.Equal(t, "电话沟通过，意向强", note.Content)
	assert.Equal(t, "HR", note.CreatedBy, "author defaults when not supplied")
	assert.Equal(t, bulkNow, note.CreatedAt)
}

func TestApplyBulkAddNoteSequentialIDs(t *testing.T) {
	cands := sampleCandidates()

	for i := 0; i < 3; i++ {
		_, err := ApplyBulk(cands, []string{"c1"}, ActionAddNote, BulkPayload{Note: "followup", CreatedBy: "王HR"}, bulkNow)
		require.NoError(t, err)
	}

	require.Len(t, cands[0].Notes, 3)
	assert.Equal(t, "3", cands[0].Notes[2].ID)
	assert.Equal(t, "王HR", cands[0].Notes[2].CreatedBy)
}

func TestApplyBulkEmptyNoteStillCounts(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"c1"}, ActionAddNote, BulkPayload{}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 1, res.UpdatedCount)
	assert.Empty(t, cands[0].Notes)
	assert.Equal(t, bulkNow, cands[0].UpdatedAt)
}

func TestApplyBulkUpdateContact(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"c1", "c2"}, ActionUpdateContact, BulkPayload{}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 2, res.UpdatedCount)
	assert.Equal(t, "2026-03-14", cands[0].LastContact)
	assert.Equal(t, "2026-03-14", cands[1].LastContact)
}

func TestApplyBulkNoIDsMatch(t *testing.T) {
	cands := sampleCandidates()

	res, err := ApplyBulk(cands, []string{"x", "y"}, ActionUpdateContact, BulkPayload{}, bulkNow)

	require.NoError(t, err)
	assert.Equal(t, 0, res.UpdatedCount)
	assert.Empty(t, res.Updated)
}
