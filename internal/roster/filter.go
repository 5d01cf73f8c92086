package roster

import (
	"strconv"
	"strings"

	"github.com/zhiren/talenthub/internal/models"
)

// All is the sentinel filter value meaning "do not filter on this field".
const All = "all"

// Filter holds the user-selected roster criteria. Empty or sentinel fields are
// skipped; set fields are AND-combined.
type Filter struct {
	Search     string
	Status     string
	Experience string // band key: junior|mid|senior, or its threshold value 2|3|5
	Rating     string // exact rating, except "2" which matches ratings 1 and 2
	Skills     string // comma-separated fragments, ANY-match
	Location   string
	Source     string
}

func skip(v string) bool { return v == "" || v == All }

// Apply returns the candidates matching f. The input slice is never mutated.
func Apply(in []models.Candidate, f Filter) []models.Candidate {
	out := make([]models.Candidate, 0, len(in))
	for _, c := range in {
		if f.matches(&c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) matches(c *models.Candidate) bool {
	if !skip(f.Search) && !matchesSearch(c, f.Search) {
		return false
	}
	if !skip(f.Status) && string(c.Status) != f.Status {
		return false
	}
	if !skip(f.Experience) && !matchesExperience(c.Experience, f.Experience) {
		return false
	}
	if !skip(f.Rating) && !matchesRating(c.Rating, f.Rating) {
		return false
	}
	if !skip(f.Skills) && !matchesSkills(c.Skills, f.Skills) {
		return false
	}
	if !skip(f.Location) && c.Location != f.Location {
		return false
	}
	if !skip(f.Source) && c.Source != f.Source {
		return false
	}
	return true
}

func matchesSearch(c *models.Candidate, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
		return true
	}
	for _, s := range c.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// matchesExperience buckets the candidate's leading experience integer into the
// three fixed bands and compares it against the requested band (or the band's
// representative threshold, which is what the UI sends).
func matchesExperience(experience, want string) bool {
	years := LeadingInt(experience)
	switch want {
	case "junior", "2":
		return years <= 2
	case "mid", "3":
		return years >= 3 && years <= 5
	case "senior", "5":
		return years > 5
	}
	return true
}

// matchesRating treats "2" as the sentinel for "rating of 2 or below".
func matchesRating(rating int, want string) bool {
	n, err := strconv.Atoi(want)
	if err != nil {
		return true
	}
	if n == 2 {
		return rating <= 2
	}
	return rating == n
}

func matchesSkills(skills []string, query string) bool {
	for _, frag := range strings.Split(query, ",") {
		frag = strings.ToLower(strings.TrimSpace(frag))
		if frag == "" {
			continue
		}
		for _, s := range skills {
			if strings.Contains(strings.ToLower(s), frag) {
				return true
			}
		}
	}
	return false
}

// LeadingInt parses the integer prefix of a free-text experience band such as
// "5年" or "3 years". Strings without a digit prefix parse as 0.
func LeadingInt(s string) int {
	n, seen := 0, false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
