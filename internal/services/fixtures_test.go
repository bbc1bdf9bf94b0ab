package services

import (
	"context"
	"testing"
	"time"

	"freehunt_backend/internal/config"
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/repositories"

	"github.com/stretchr/testify/require"
)

// fixture sets up a company, a freelance and the service under test wiring.
type fixture struct {
	mem     *memRepos
	repos   *repositories.Repos
	tx      memTxManager
	gateway *fakeGateway
	mailer  *fakeMailer

	companyUser   models.User
	company       models.Company
	freelanceUser models.User
	freelance     models.Freelance
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := newMemRepos()
	repos := mem.repos()
	f := &fixture{
		mem:     mem,
		repos:   repos,
		tx:      memTxManager{repos: repos},
		gateway: &fakeGateway{},
		mailer:  &fakeMailer{},
	}

	ctx := context.Background()

	f.companyUser = models.User{
		BaseModel: models.BaseModel{ID: newID()},
		Email:     "company@example.com",
		Name:      "Acme",
		Role:      models.UserRoleCompany,
		IsActive:  true,
	}
	require.NoError(t, repos.User.Create(ctx, &f.companyUser))
	f.company = models.Company{
		BaseModel: models.BaseModel{ID: newID()},
		UserID:    f.companyUser.ID,
		Name:      "Acme Corp",
	}
	require.NoError(t, repos.Company.Create(ctx, &f.company))

	f.freelanceUser = models.User{
		BaseModel: models.BaseModel{ID: newID()},
		Email:     "dev@example.com",
		Name:      "Jordan Doe",
		Role:      models.UserRoleFreelance,
		IsActive:  true,
	}
	require.NoError(t, repos.User.Create(ctx, &f.freelanceUser))
	f.freelance = models.Freelance{
		BaseModel: models.BaseModel{ID: newID()},
		UserID:    f.freelanceUser.ID,
		FirstName: "Jordan",
		LastName:  "Doe",
	}
	require.NoError(t, repos.Freelance.Create(ctx, &f.freelance))

	return f
}

func (f *fixture) candidateService() *CandidateService {
	return NewCandidateService(f.repos, f.tx, f.mailer)
}

func (f *fixture) checkpointService() *CheckpointService {
	return NewCheckpointService(f.repos, f.tx)
}

func (f *fixture) jobPostingService() *JobPostingService {
	return NewJobPostingService(f.repos, f.tx, f.gateway, config.PaymentConfig{
		PublicationFee: 49.90,
		Currency:       "EUR",
	})
}

func (f *fixture) projectService() *ProjectService {
	return NewProjectService(f.repos)
}

// createPosting stores a posting owned by the fixture company.
func (f *fixture) createPosting(t *testing.T, status models.JobPostingStatus, checkpoints ...models.Checkpoint) models.JobPosting {
	t.Helper()
	posting := models.JobPosting{
		BaseModel:   models.BaseModel{ID: newID()},
		CompanyID:   f.company.ID,
		Title:       "Backend developer",
		Description: "Build the API",
		Status:      status,
		Checkpoints: checkpoints,
	}
	require.NoError(t, f.repos.JobPosting.Create(context.Background(), &posting))
	return posting
}

// createCandidate stores a pending application from the fixture freelance.
func (f *fixture) createCandidate(t *testing.T, jobPostingID string) models.Candidate {
	t.Helper()
	candidate := models.Candidate{
		BaseModel:    models.BaseModel{ID: newID()},
		JobPostingID: jobPostingID,
		FreelanceID:  f.freelance.ID,
		Status:       models.CandidateStatusPending,
	}
	require.NoError(t, f.repos.Candidate.Create(context.Background(), &candidate))
	return candidate
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func checkpointOn(name, date string, amount float64) models.Checkpoint {
	parsed, _ := time.Parse("2006-01-02", date)
	return models.Checkpoint{
		Name:   name,
		Date:   parsed,
		Amount: amount,
		Status: models.CheckpointStatusTodo,
	}
}
