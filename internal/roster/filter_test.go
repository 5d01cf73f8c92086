package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhiren/talenthub/internal/models"
)

func sampleCandidates() []models.Candidate {
	return []models.Candidate{
		{ID: "c1", Name: "张伟", Email: "zhangwei@example.com", Location: "北京", Experience: "5年", Rating: 4, Status: models.CandidateActive, Source: "猎头", Skills: []string{"Go", "Kubernetes"}},
		{ID: "c2", Name: "李娜", Email: "lina@example.com", Location: "上海", Experience: "2年", Rating: 3, Status: models.CandidateActive, Source: "内推", Skills: []string{"React", "TypeScript"}},
		{ID: "c3", Name: "Wang Fang", Email: "wangfang@example.com", Location: "北京", Experience: "8年", Rating: 5, Status: models.CandidatePassive, Source: "官网", Skills: []string{"Java", "Spring"}},
		{ID: "c4", Name: "刘强", Email: "liuqiang@example.com", Location: "深圳", Experience: "3年", Rating: 2, Status: models.CandidateRejected, Source: "猎头", Skills: []string{"Python"}},
	}
}

func TestApplyAllSentinelReturnsEverything(t *testing.T) {
	in := sampleCandidates()

	out := Apply(in, Filter{Search: "", Status: All, Experience: All, Rating: All, Skills: "", Location: All, Source: All})

	assert.Len(t, out, len(in))
}

func TestApplyNeverMutatesInput(t *testing.T) {
	in := sampleCandidates()

	_ = Apply(in, Filter{Status: "active"})

	assert.Equal(t, sampleCandidates(), in)
}

func TestApplySearchMatchesNameEmailOrSkill(t *testing.T) {
	in := sampleCandidates()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring", "张", []string{"c1"}},
		{"email substring, case-insensitive", "LINA@", []string{"c2"}},
		{"skill substring", "kube", []string{"c1"}},
		{"no match", "rust", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(in, Filter{Search: tt.query})
			ids := make([]string, 0, len(out))
			for _, c := range out {
				ids = append(ids, c.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestApplyExperienceBands(t *testing.T) {
	in := sampleCandidates()

	junior := Apply(in, Filter{Experience: "junior"})
	require.Len(t, junior, 1)
	assert.Equal(t, "c2", junior[0].ID)

	mid := Apply(in, Filter{Experience: "mid"})
	require.Len(t, mid, 2)
	assert.Equal(t, "c1", mid[0].ID)
	assert.Equal(t, "c4", mid[1].ID)

	senior := Apply(in, Filter{Experience: "senior"})
	require.Len(t, senior, 1)
	assert.Equal(t, "c3", senior[0].ID)

	// the UI sends the band's representative threshold value
	assert.Equal(t, junior, Apply(in, Filter{Experience: "2"}))
	assert.Equal(t, mid, Apply(in, Filter{Experience: "3"}))
	assert.Equal(t, senior, Apply(in, Filter{Experience: "5"}))
}

func TestApplyRatingSentinel(t *testing.T) {
	in := []models.Candidate{
		{ID: "a", Rating: 4}, {ID: "b", Rating: 3}, {ID: "c", Rating: 5}, {ID: "d", Rating: 4},
		{ID: "e", Rating: 3}, {ID: "f", Rating: 5}, {ID: "g", Rating: 2}, {ID: "h", Rating: 4},
	}

	// "2" means rating of 2 or below
	low := Apply(in, Filter{Rating: "2"})
	require.Len(t, low, 1)
	assert.Equal(t, "g", low[0].ID)

	fives := Apply(in, Filter{Rating: "5"})
	assert.Len(t, fives, 2)
}

func TestApplySkillsCommaList(t *testing.T) {
	in := sampleCandidates()

	out := Apply(in, Filter{Skills: "react, spring"})

	require.Len(t, out, 2)
	assert.Equal(t, "c2", out[0].ID)
	assert.Equal(t, "c3", out[1].ID)
}

func TestApplyCombinedFiltersAreANDed(t *testing.T) {
	in := sampleCandidates()

	out := Apply(in, Filter{Location: "北京", Status: "active"})

	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)
}

func TestApplyEmptyInput(t *testing.T) {
	out := Apply(nil, Filter{Search: "go"})
	assert.Empty(t, out)
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 5, LeadingInt("5年"))
	assert.Equal(t, 10, LeadingInt("10+ years"))
	assert.Equal(t, 0, LeadingInt("应届"))
	assert.Equal(t, 0, LeadingInt(""))
}
