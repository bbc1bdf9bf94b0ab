package repositories

import (
	"context"
	"strings"

	"freehunt_backend/internal/models"

	"gorm.io/gorm"
)

// JobPostingSearch carries the optional filters of the public listing
// endpoint. Zero values mean "no filter".
type JobPostingSearch struct {
	Query        string
	Location     string
	MinDailyRate float64
	MaxDailyRate float64
	SkillIDs     []string
	Limit        int
	Offset       int
}

type JobPostingRepository interface {
	Create(ctx context.Context, posting *models.JobPosting) error
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	Update(ctx context.Context, posting *models.JobPosting) error
	Delete(ctx context.Context, id string) error
	ReplaceSkills(ctx context.Context, posting *models.JobPosting, skills []models.Skill) error
	ListByCompany(ctx context.Context, companyID string) ([]models.JobPosting, error)
	SearchPublished(ctx context.Context, criteria JobPostingSearch) ([]models.JobPosting, int64, error)
}

type jobPostingRepository struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &jobPostingRepository{db: db}
}

func (r *jobPostingRepository) Create(ctx context.Context, posting *models.JobPosting) error {
	return translate(r.db.WithContext(ctx).Create(posting).Error)
}

func (r *jobPostingRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Company.User").
		Preload("Skills").
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("date asc")
		}).
		First(&posting, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &posting, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, posting *models.JobPosting) error {
	return translate(r.db.WithContext(ctx).Omit("Skills", "Checkpoints", "Company").Save(posting).Error)
}

func (r *jobPostingRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.JobPosting{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *jobPostingRepository) ReplaceSkills(ctx context.Context, posting *models.JobPosting, skills []models.Skill) error {
	return translate(r.db.WithContext(ctx).Model(posting).Association("Skills").Replace(skills))
}

func (r *jobPostingRepository) ListByCompany(ctx context.Context, companyID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&postings).Error
	if err != nil {
		return nil, translate(err)
	}
	return postings, nil
}

// SearchPublished lists published postings, promoted ones first. The total
// count is taken before limit/offset so callers can paginate.
func (r *jobPostingRepository) SearchPublished(ctx context.Context, criteria JobPostingSearch) ([]models.JobPosting, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("job_postings.status = ?", models.JobPostingStatusPublished)

	if q := strings.TrimSpace(criteria.Query); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("job_postings.title ILIKE ? OR job_postings.description ILIKE ?", pattern, pattern)
	}
	if criteria.Location != "" {
		query = query.Where("job_postings.location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.MinDailyRate > 0 {
		query = query.Where("job_postings.average_daily_rate >= ?", criteria.MinDailyRate)
	}
	if criteria.MaxDailyRate > 0 {
		query = query.Where("job_postings.average_daily_rate <= ?", criteria.MaxDailyRate)
	}
	if len(criteria.SkillIDs) > 0 {
		query = query.
			Joins("JOIN job_posting_skills jps ON jps.job_posting_id = job_postings.id").
			Where("jps.skill_id IN ?", criteria.SkillIDs).
			Distinct("job_postings.*")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	limit := criteria.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var postings []models.JobPosting
	err := query.
		Preload("Company").
		Preload("Skills").
		Order("job_postings.is_promoted desc, job_postings.created_at desc").
		Limit(limit).
		Offset(criteria.Offset).
		Find(&postings).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return postings, total, nil
}
