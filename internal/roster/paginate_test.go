package roster

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhiren/talenthub/internal/models"
)

func nCandidates(n int) []models.Candidate {
	out := make([]models.Candidate, n)
	for i := range out {
		out[i] = models.Candidate{ID: "c" + strconv.Itoa(i+1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		wantLen    int
		wantFirst  string
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 25, 1, 10, 10, "c1", 3, true, false},
		{"middle", 25, 2, 10, 10, "c11", 3, true, true},
		{"short last page", 25, 3, 10, 5, "c21", 3, false, true},
		{"past the end", 25, 9, 10, 0, "", 3, false, true},
		{"exact fit", 20, 2, 10, 10, "c11", 2, false, true},
		{"empty input", 0, 1, 10, 0, "", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, p := Paginate(nCandidates(tt.total), tt.page, tt.limit)

			assert.Len(t, slice, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, slice[0].ID)
			}
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestPaginateSliceLengthInvariant(t *testing.T) {
	// page_slice.length == min(limit, max(0, total - (page-1)*limit))
	for total := 0; total <= 12; total++ {
		in := nCandidates(total)
		for page := 1; page <= 5; page++ {
			for limit := 1; limit <= 6; limit++ {
				slice, _ := Paginate(in, page, limit)

				want := total - (page-1)*limit
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				assert.Len(t, slice, want, "total=%d page=%d limit=%d", total, page, limit)
			}
		}
	}
}

func TestPaginateNormalizesBadInput(t *testing.T) {
	slice, p := Paginate(nCandidates(3), 0, -1)

	assert.Equal(t, 1, p.Page)
	assert.Len(t, slice, 1)
}
