package services

import (
	"context"
	"testing"

	"freehunt_backend/internal/models"
	"freehunt_backend/internal/services/dto"
	"freehunt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// provisionedPosting publishes a posting with the given checkpoints and
// accepts the fixture freelance so checkpoint transitions become legal.
func provisionedPosting(t *testing.T, f *fixture, checkpoints ...models.Checkpoint) models.JobPosting {
	t.Helper()
	posting := f.createPosting(t, models.JobPostingStatusPublished, checkpoints...)
	candidate := f.createCandidate(t, posting.ID)
	_, err := f.candidateService().Accept(context.Background(), candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	return posting
}

func postingCheckpoints(t *testing.T, f *fixture, jobPostingID string) []models.Checkpoint {
	t.Helper()
	checkpoints, err := f.repos.Checkpoint.ListByJobPosting(context.Background(), jobPostingID)
	require.NoError(t, err)
	return checkpoints
}

func TestSubmitThenValidate(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f,
		checkpointOn("kickoff", "2025-12-01", 1000),
		checkpointOn("delivery", "2025-12-30", 2000),
	)
	svc := f.checkpointService()
	ctx := context.Background()
	cp := postingCheckpoints(t, f, posting.ID)[0]

	submitted, err := svc.Submit(ctx, cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	require.NoError(t, err)
	assert.Equal(t, models.CheckpointStatusInProgress, submitted.Status)
	require.NotNil(t, submitted.SubmittedBy)
	assert.Equal(t, f.freelanceUser.ID, *submitted.SubmittedBy)
	require.NotNil(t, submitted.SubmittedAt)

	validated, err := svc.Validate(ctx, cp.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	assert.Equal(t, models.CheckpointStatusDone, validated.Status)
	require.NotNil(t, validated.ValidatedBy)
	assert.Equal(t, f.companyUser.ID, *validated.ValidatedBy)
	require.NotNil(t, validated.ValidatedAt)
	// Submission stamp survives validation untouched.
	assert.Equal(t, submitted.SubmittedAt, validated.SubmittedAt)
}

func TestDirectValidationSkipsSubmission(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	cp := postingCheckpoints(t, f, posting.ID)[0]

	validated, err := f.checkpointService().Validate(context.Background(), cp.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	assert.Equal(t, models.CheckpointStatusDone, validated.Status)
	assert.Nil(t, validated.SubmittedBy)
	assert.Nil(t, validated.SubmittedAt)
}

func TestSubmitTwiceFails(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	svc := f.checkpointService()
	ctx := context.Background()
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := svc.Submit(ctx, cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCheckpointStatus)
}

func TestSubmitWithoutProjectFails(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished, checkpointOn("setup", "2025-12-01", 500))
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := f.checkpointService().Submit(context.Background(), cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	assert.ErrorIs(t, err, apperrors.ErrCheckpointNotSubmittable)
}

func TestValidateDoneFails(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f,
		checkpointOn("setup", "2025-12-01", 500),
		checkpointOn("delivery", "2025-12-30", 1500),
	)
	svc := f.checkpointService()
	ctx := context.Background()
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := svc.Validate(ctx, cp.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, cp.ID, f.companyUser.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCheckpointStatus)
}

func TestValidatingLastCheckpointCompletesProject(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f,
		checkpointOn("setup", "2025-12-01", 500),
		checkpointOn("delivery", "2025-12-30", 1500),
	)
	svc := f.checkpointService()
	ctx := context.Background()
	checkpoints := postingCheckpoints(t, f, posting.ID)

	_, err := svc.Validate(ctx, checkpoints[0].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	project, err := f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, project.Status)
	assert.Nil(t, project.CompletedAt)

	_, err = svc.Validate(ctx, checkpoints[1].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	project, err = f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
	require.NotNil(t, project.CompletedAt)
}

func TestCancelingLastOpenCheckpointCompletesProject(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f,
		checkpointOn("setup", "2025-12-01", 500),
		checkpointOn("delivery", "2025-12-30", 1500),
	)
	svc := f.checkpointService()
	ctx := context.Background()
	checkpoints := postingCheckpoints(t, f, posting.ID)

	_, err := svc.Validate(ctx, checkpoints[0].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, checkpoints[1].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	project, err := f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
}

func TestDelaySubmittedCheckpointFails(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	svc := f.checkpointService()
	ctx := context.Background()
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := svc.Submit(ctx, cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	require.NoError(t, err)

	_, err = svc.MarkDelayed(ctx, cp.ID, f.companyUser.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCheckpointStatus)
}

func TestDelayedCheckpointCanStillBeSubmitted(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	svc := f.checkpointService()
	ctx := context.Background()
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := svc.MarkDelayed(ctx, cp.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	require.NoError(t, err)
	assert.Equal(t, models.CheckpointStatusInProgress, submitted.Status)
}

func TestCompanyCannotSubmit(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := f.checkpointService().Submit(context.Background(), cp.ID, f.companyUser.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestFreelanceCannotValidate(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f, checkpointOn("setup", "2025-12-01", 500))
	cp := postingCheckpoints(t, f, posting.ID)[0]

	_, err := f.checkpointService().Validate(context.Background(), cp.ID, f.freelanceUser.ID, models.UserRoleFreelance)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestEditCheckpointOnPublishedPostingFails(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished, checkpointOn("setup", "2025-12-01", 500))
	cp := postingCheckpoints(t, f, posting.ID)[0]
	amount := 900.0

	_, err := f.checkpointService().Update(context.Background(), cp.ID, f.companyUser.ID, models.UserRoleCompany,
		dto.UpdateCheckpointRequest{Amount: &amount})
	assert.ErrorIs(t, err, apperrors.ErrInvalidJobPostingStatus)
}

func TestZeroAmountCheckpointStillCompletesProject(t *testing.T) {
	f := newFixture(t)
	posting := provisionedPosting(t, f,
		checkpointOn("kickoff", "2025-12-01", 1000),
		checkpointOn("retrospective", "2025-12-30", 0),
	)
	svc := f.checkpointService()
	ctx := context.Background()
	checkpoints := postingCheckpoints(t, f, posting.ID)

	_, err := svc.Validate(ctx, checkpoints[0].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	project, err := f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, project.Status)
	assert.Equal(t, 1000.0, project.Amount)

	// Validating the free checkpoint last still completes the project.
	_, err = svc.Validate(ctx, checkpoints[1].ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	project, err = f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
	require.NotNil(t, project.CompletedAt)
}
