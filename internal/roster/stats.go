package roster

import (
	"math"

	"github.com/zhiren/talenthub/internal/models"
)

// Stats are dashboard counters computed over the full candidate set (not the
// filtered result).
type Stats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	ByExperience  map[string]int `json:"by_experience"`
	AverageRating float64        `json:"average_rating"`
	ByLocation    map[string]int `json:"by_location"`
	BySource      map[string]int `json:"by_source"`
}

// Band returns the experience band key for a free-text experience string.
func Band(experience string) string {
	years := LeadingInt(experience)
	switch {
	case years <= 2:
		return "junior"
	case years <= 5:
		return "mid"
	default:
		return "senior"
	}
}

func Compute(in []models.Candidate) Stats {
	st := Stats{
		Total:        len(in),
		ByStatus:     map[string]int{},
		ByExperience: map[string]int{},
		ByLocation:   map[string]int{},
		BySource:     map[string]int{},
	}

	sum := 0
	for _, c := range in {
		st.ByStatus[string(c.Status)]++
		st.ByExperience[Band(c.Experience)]++
		st.ByLocation[c.Location]++
		st.BySource[c.Source]++
		sum += c.Rating
	}

	if st.Total > 0 {
		// arithmetic mean, round half up to one decimal
		st.AverageRating = math.Floor(float64(sum)/float64(st.Total)*10+0.5) / 10
	}
	return st
}
