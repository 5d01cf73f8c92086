package roster

import "github.com/zhiren/talenthub/internal/models"

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Paginate slices in into the 1-based page of size limit. A page past the end
// yields an empty slice, not an error.
func Paginate(in []models.Candidate, page, limit int) ([]models.Candidate, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(in)
	start := (page - 1) * limit
	end := start + limit

	p := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
		HasNext:    end < total,
		HasPrev:    page > 1,
	}

	if start >= total {
		return []models.Candidate{}, p
	}
	if end > total {
		end = total
	}
	return in[start:end], p
}
