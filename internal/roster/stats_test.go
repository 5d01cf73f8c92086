package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zhiren/talenthub/internal/models"
)

func TestComputeEmptyInput(t *testing.T) {
	st := Compute(nil)

	assert.Equal(t, 0, st.Total)
	assert.Equal(t, 0.0, st.AverageRating)
	assert.Empty(t, st.ByStatus)
	assert.Empty(t, st.ByExperience)
}

func TestComputeAverageRating(t *testing.T) {
	ratings := []int{4, 3, 5, 4, 3, 5, 2, 4} // sum 30, avg 3.75 -> 3.8
	in := make([]models.Candidate, len(ratings))
	for i, r := range ratings {
		in[i] = models.Candidate{Rating: r}
	}

	st := Compute(in)

	assert.Equal(t, 3.8, st.AverageRating)
}

func TestComputeGroupedCounts(t *testing.T) {
	st := Compute(sampleCandidates())

	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 2, st.ByStatus["active"])
	assert.Equal(t, 1, st.ByStatus["passive"])
	assert.Equal(t, 1, st.ByStatus["rejected"])

	assert.Equal(t, 1, st.ByExperience["junior"])
	assert.Equal(t, 2, st.ByExperience["mid"])
	assert.Equal(t, 1, st.ByExperience["senior"])

	assert.Equal(t, 2, st.ByLocation["北京"])
	assert.Equal(t, 2, st.BySource["猎头"])
}

func TestComputeAverageStaysInRange(t *testing.T) {
	st := Compute([]models.Candidate{{Rating: 1}, {Rating: 5}})

	assert.GreaterOrEqual(t, st.AverageRating, 1.0)
	assert.LessOrEqual(t, st.AverageRating, 5.0)
}

func TestBand(t *testing.T) {
	assert.Equal(t, "junior", Band("2年"))
	assert.Equal(t, "junior", Band("应届"))
	assert.Equal(t, "mid", Band("3年"))
	assert.Equal(t, "mid", Band("5年"))
	assert.Equal(t, "senior", Band("6年"))
}
