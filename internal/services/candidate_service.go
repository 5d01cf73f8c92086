package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zhiren/talenthub/internal/cache"
	"github.com/zhiren/talenthub/internal/models"
	pgrepo "github.com/zhiren/talenthub/internal/repositories/postgres"
	"github.com/zhiren/talenthub/internal/roster"
	"github.com/zhiren/talenthub/internal/storage"
	"github.com/zhiren/talenthub/internal/utils"
)

const (
	statsCacheKey = "candidates:stats"
	statsCacheTTL = 60 * time.Second

	// MaxResumeSize caps resume uploads at 5MB.
	MaxResumeSize = 5 << 20
)

// AllowedResumeTypes are the accepted resume MIME types.
var AllowedResumeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// BulkEvent describes a completed bulk mutation; it is fanned out to the
// notification pipeline.
type BulkEvent struct {
	Action       string `json:"action"`
	ActorID      string `json:"actor_id"`
	Requested    int    `json:"requested"`
	UpdatedCount int    `json:"updated_count"`
}

type EventPublisher interface {
	PublishBulkEvent(ctx context.Context, e BulkEvent) error
}

// CandidateList is the full roster page response: the page slice plus
// pagination math and aggregate stats over the unfiltered set.
type CandidateList struct {
	Candidates []models.Candidate `json:"candidates"`
	Pagination roster.Pagination  `json:"pagination"`
	Stats      roster.Stats       `json:"stats"`
}

type CreateCandidateInput struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required"`
	Location          string   `json:"location"`
	Experience        string   `json:"experience"`
	Education         string   `json:"education"`
	Skills            []string `json:"skills"`
	Rating            int      `json:"rating"`
	Status            string   `json:"status"`
	Source            string   `json:"source"`
	SalaryExpectation string   `json:"salary_expectation"`
	ResumeURL         string   `json:"resume_url"`
}

type CandidateService interface {
	List(ctx context.Context, f roster.Filter, page, limit int) (*CandidateList, error)
	Create(ctx context.Context, in CreateCandidateInput) (*models.Candidate, error)
	BulkUpdate(ctx context.Context, actorID string, action roster.BulkAction, ids []string, p roster.BulkPayload) (*roster.BulkResult, error)
	AttachResume(ctx context.Context, id, fileName, mimeType string, size int64, r io.Reader) (*models.Candidate, error)
}

type candidateService struct {
	primary  pgrepo.CandidateRepository
	fallback pgrepo.CandidateRepository
	cache    cache.Cache
	uploader storage.Uploader
	events   EventPublisher
	log      *logrus.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewCandidateService wires the dual-path roster service. fallback serves
// reads when primary is down; cache, uploader, and events may be nil.
func NewCandidateService(primary, fallback pgrepo.CandidateRepository, c cache.Cache, up storage.Uploader, ev EventPublisher, log *logrus.Logger) CandidateService {
	return &candidateService{
		primary:  primary,
		fallback: fallback,
		cache:    c,
		uploader: up,
		events:   ev,
		log:      log,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *candidateService) List(ctx context.Context, f roster.Filter, page, limit int) (*CandidateList, error) {
	const op = "CandidateService.List"

	all, err := utils.WithFallback(ctx, s.log, op, s.primary.List, s.fallback.List)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load candidates", err)
	}

	filtered := roster.Apply(all, f)
	slice, pg := roster.Paginate(filtered, page, limit)

	return &CandidateList{
		Candidates: slice,
		Pagination: pg,
		Stats:      s.statsFor(ctx, all),
	}, nil
}

// statsFor serves the dashboard counters from cache when possible; the cache
// is invalidated by every mutation.
func (s *candidateService) statsFor(ctx context.Context, all []models.Candidate) roster.Stats {
	if s.cache != nil {
		var cached roster.Stats
		if hit, err := s.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
			return cached
		}
	}

	st := roster.Compute(all)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, statsCacheKey, st, statsCacheTTL); err != nil && s.log != nil {
			s.log.WithError(err).Debug("stats cache write failed")
		}
	}
	return st
}

func (s *candidateService) Create(ctx context.Context, in CreateCandidateInput) (*models.Candidate, error) {
	const op = "CandidateService.Create"

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "email" {
				return nil, utils.E(utils.CodeInvalidArgument, op, "邮箱格式不正确", err)
			}
			return nil, utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("缺少必填字段: %s", fe.Field()), err)
		}
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid candidate payload", err)
	}

	if _, err := s.primary.FindByEmail(ctx, in.Email); err == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "该邮箱已存在候选人记录", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email uniqueness", err)
	}

	now := s.now()
	c := &models.Candidate{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		Location:          in.Location,
		Experience:        in.Experience,
		Education:         in.Education,
		Skills:            in.Skills,
		Rating:            in.Rating,
		Status:            models.CandidateStatus(in.Status),
		Source:            in.Source,
		SalaryExpectation: in.SalaryExpectation,
		ResumeURL:         in.ResumeURL,
		LastContact:       now.Format("2006-01-02"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if c.Status == "" {
		c.Status = models.CandidateActive
	}
	if c.Rating == 0 {
		c.Rating = 3
	}
	if c.Source == "" {
		c.Source = "手动添加"
	}

	if err := s.primary.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create candidate", err)
	}

	s.invalidateStats(ctx)
	return c, nil
}

func (s *candidateService) BulkUpdate(ctx context.Context, actorID string, action roster.BulkAction, ids []string, p roster.BulkPayload) (*roster.BulkResult, error) {
	const op = "CandidateService.BulkUpdate"

	if !action.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("不支持的批量操作: %s", action), roster.ErrUnknownAction)
	}

	cands, err := s.primary.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load candidates", err)
	}

	res, err := roster.ApplyBulk(cands, ids, action, p, s.now())
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}

	if err := s.primary.SaveAll(ctx, res.Updated); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist bulk update", err)
	}

	s.invalidateStats(ctx)

	if s.events != nil && res.UpdatedCount > 0 {
		e := BulkEvent{Action: string(action), ActorID: actorID, Requested: len(ids), UpdatedCount: res.UpdatedCount}
		if err := s.events.PublishBulkEvent(ctx, e); err != nil && s.log != nil {
			s.log.WithError(err).Warn("bulk event publish failed")
		}
	}

	return &res, nil
}

func (s *candidateService) AttachResume(ctx context.Context, id, fileName, mimeType string, size int64, r io.Reader) (*models.Candidate, error) {
	const op = "CandidateService.AttachResume"

	ext, ok := AllowedResumeTypes[mimeType]
	if !ok {
		return nil, utils.E(utils.CodeInvalidArgument, op, "仅支持 PDF/Word 格式简历", nil)
	}
	if size <= 0 || size > MaxResumeSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "简历文件不能超过5MB", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	cands, err := s.primary.FindByIDs(ctx, []string{id})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load candidate", err)
	}
	if len(cands) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "candidate not found", nil)
	}

	objectName := "resumes/" + id + "/" + uuid.NewString() + ext

	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	c := cands[0]
	c.ResumeURL = storedPath
	c.UpdatedAt = s.now()
	if err := s.primary.Save(ctx, &c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume url", err)
	}
	return &c, nil
}

func (s *candidateService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey); err != nil && s.log != nil {
		s.log.WithError(err).Debug("stats cache invalidation failed")
	}
}
