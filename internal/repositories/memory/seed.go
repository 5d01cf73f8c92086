package memory

import (
	"time"

	"github.com/zhiren/talenthub/internal/models"
)

var seedTime = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// SeedCandidates is the fixed substitute roster served while the primary
// store is down. Fresh copies are returned so callers can mutate freely.
func SeedCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID: "a1f8c2d4-0001-4f6b-9c11-3e7a52b90001", Name: "张伟", Email: "zhangwei@talenthub.cn",
			Phone: "13800138001", Location: "北京", Experience: "5年", Education: "本科",
			Skills: []string{"Go", "Kubernetes", "MySQL"}, Rating: 4, Status: models.CandidateActive,
			Source: "猎头", LastContact: "2025-12-20", SalaryExpectation: "30-40K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0002-4f6b-9c11-3e7a52b90002", Name: "李娜", Email: "lina@talenthub.cn",
			Phone: "13800138002", Location: "上海", Experience: "2年", Education: "本科",
			Skills: []string{"React", "TypeScript", "CSS"}, Rating: 3, Status: models.CandidateActive,
			Source: "内推", LastContact: "2025-12-28", SalaryExpectation: "18-25K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0003-4f6b-9c11-3e7a52b90003", Name: "王芳", Email: "wangfang@talenthub.cn",
			Phone: "13800138003", Location: "北京", Experience: "8年", Education: "硕士",
			Skills: []string{"Java", "Spring", "微服务"}, Rating: 5, Status: models.CandidatePassive,
			Source: "官网", LastContact: "2025-11-15", SalaryExpectation: "45-60K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0004-4f6b-9c11-3e7a52b90004", Name: "刘强", Email: "liuqiang@talenthub.cn",
			Phone: "13800138004", Location: "深圳", Experience: "3年", Education: "本科",
			Skills: []string{"Python", "数据分析"}, Rating: 4, Status: models.CandidateActive,
			Source: "招聘网站", LastContact: "2026-01-02",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0005-4f6b-9c11-3e7a52b90005", Name: "陈静", Email: "chenjing@talenthub.cn",
			Phone: "13800138005", Location: "杭州", Experience: "4年", Education: "本科",
			Skills: []string{"产品设计", "Figma"}, Rating: 3, Status: models.CandidateActive,
			Source: "内推", LastContact: "2025-12-10", SalaryExpectation: "20-28K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0006-4f6b-9c11-3e7a52b90006", Name: "杨洋", Email: "yangyang@talenthub.cn",
			Phone: "13800138006", Location: "上海", Experience: "7年", Education: "硕士",
			Skills: []string{"Go", "分布式系统", "Redis"}, Rating: 5, Status: models.CandidateHired,
			Source: "猎头", LastContact: "2025-12-30", SalaryExpectation: "50-65K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0007-4f6b-9c11-3e7a52b90007", Name: "赵敏", Email: "zhaomin@talenthub.cn",
			Phone: "13800138007", Location: "深圳", Experience: "1年", Education: "大专",
			Skills: []string{"测试", "Selenium"}, Rating: 2, Status: models.CandidateRejected,
			Source: "招聘网站", LastContact: "2025-10-08",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
		{
			ID: "a1f8c2d4-0008-4f6b-9c11-3e7a52b90008", Name: "孙磊", Email: "sunlei@talenthub.cn",
			Phone: "13800138008", Location: "北京", Experience: "6年", Education: "本科",
			Skills: []string{"DevOps", "Terraform", "AWS"}, Rating: 4, Status: models.CandidateActive,
			Source: "官网", LastContact: "2026-01-04", SalaryExpectation: "40-50K",
			CreatedAt: seedTime, UpdatedAt: seedTime,
		},
	}
}
