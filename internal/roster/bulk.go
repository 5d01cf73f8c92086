package roster

import (
	"errors"
	"strconv"
	"time"

	"github.com/zhiren/talenthub/internal/models"
)

type BulkAction string

const (
	ActionUpdateStatus  BulkAction = "update_status"
	ActionUpdateRating  BulkAction = "update_rating"
	ActionAddNote       BulkAction = "add_note"
	ActionUpdateContact BulkAction = "update_contact"
)

func (a BulkAction) Valid() bool {
	switch a {
	case ActionUpdateStatus, ActionUpdateRating, ActionAddNote, ActionUpdateContact:
		return true
	}
	return false
}

// ErrUnknownAction rejects the whole batch before any record is touched.
var ErrUnknownAction = errors.New("unknown bulk action")

const defaultNoteAuthor = "HR"

// BulkPayload carries the action-specific data of a bulk request.
type BulkPayload struct {
	Status    string `json:"status,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

type BulkResult struct {
	UpdatedCount int                `json:"updated_count"`
	Updated      []models.Candidate `json:"updated_candidates"`
}

// ApplyBulk applies action to every candidate in cands whose ID appears in
// ids, mutating them in place. IDs with no matching record are skipped.
//
// Every matched record counts toward UpdatedCount and gets UpdatedAt
// refreshed, even when the action's own guard (empty status, out-of-range
// rating, empty note) left the field unchanged. That mirrors the historical
// batch contract the dashboards rely on: the count reports records touched,
// not fields changed.
func ApplyBulk(cands []models.Candidate, ids []string, action BulkAction, p BulkPayload, now time.Time) (BulkResult, error) {
	if !action.Valid() {
		return BulkResult{}, ErrUnknownAction
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	res := BulkResult{Updated: []models.Candidate{}}
	for i := range cands {
		c := &cands[i]
		if _, ok := want[c.ID]; !ok {
			continue
		}

		applyAction(c, action, p, now)
		c.UpdatedAt = now

		res.UpdatedCount++
		res.Updated = append(res.Updated, *c)
	}
	return res, nil
}

func applyAction(c *models.Candidate, action BulkAction, p BulkPayload, now time.Time) {
	switch action {
	case ActionUpdateStatus:
		if p.Status != "" {
			c.Status = models.CandidateStatus(p.Status)
		}
	case ActionUpdateRating:
		if p.Rating >= 1 && p.Rating <= 5 {
			c.Rating = p.Rating
		}
	case ActionAddNote:
		if p.Note != "" {
			author := p.CreatedBy
			if author == "" {
				author = defaultNoteAuthor
			}
			c.Notes = append(c.Notes, models.CandidateNote{
				ID:          strconv.Itoa(len(c.Notes) + 1),
				CandidateID: c.ID,
				Content:     p.Note,
				CreatedBy:   author,
				CreatedAt:   now,
			})
		}
	case ActionUpdateContact:
		c.LastContact = now.Format("2006-01-02")
	}
}
