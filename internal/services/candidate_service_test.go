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

func TestApplyRequiresPublishedPosting(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusDraft)

	_, err := f.candidateService().Apply(context.Background(), f.freelanceUser.ID, dto.ApplyRequest{
		JobPostingID: posting.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrJobPostingNotPublished)
}

func TestApplyTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	svc := f.candidateService()
	ctx := context.Background()

	_, err := svc.Apply(ctx, f.freelanceUser.ID, dto.ApplyRequest{JobPostingID: posting.ID})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, f.freelanceUser.ID, dto.ApplyRequest{JobPostingID: posting.ID})
	assert.ErrorIs(t, err, apperrors.ErrCandidateAlreadyExists)
}

func TestAcceptProvisionsProject(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished,
		checkpointOn("design", "2025-12-10", 1500),
		checkpointOn("kickoff", "2025-12-01", 1000),
		checkpointOn("delivery", "2025-12-30", 2000),
	)
	candidate := f.createCandidate(t, posting.ID)
	ctx := context.Background()

	result, err := f.candidateService().Accept(ctx, candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	assert.Equal(t, models.CandidateStatusAccepted, result.Candidate.Status)

	project := result.Project
	assert.Equal(t, posting.ID, project.JobPostingID)
	assert.Equal(t, day(t, "2025-12-01"), project.StartDate)
	assert.Equal(t, day(t, "2025-12-30"), project.EndDate)
	assert.Equal(t, 4500.0, project.Amount)
	assert.Equal(t, models.ProjectStatusInProgress, project.Status)
	require.NotEmpty(t, project.ConversationID)

	conversation, err := f.repos.Conversation.GetByID(ctx, project.ConversationID)
	require.NoError(t, err)
	assert.True(t, conversation.HasParticipant(f.companyUser.ID))
	assert.True(t, conversation.HasParticipant(f.freelanceUser.ID))
	require.NotNil(t, conversation.ProjectID)
	assert.Equal(t, project.ID, *conversation.ProjectID)

	messages, err := f.repos.Message.ListByConversation(ctx, conversation.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, f.companyUser.ID, messages[0].SenderID)
	assert.Equal(t, f.freelanceUser.ID, messages[0].ReceiverID)
	assert.Contains(t, messages[0].Content, posting.Title)
}

func TestAcceptWithoutCheckpoints(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	candidate := f.createCandidate(t, posting.ID)

	result, err := f.candidateService().Accept(context.Background(), candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Project.Amount)
	assert.Equal(t, result.Project.StartDate, result.Project.EndDate)
	assert.False(t, result.Project.StartDate.IsZero())
}

func TestAcceptTwiceFails(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	candidate := f.createCandidate(t, posting.ID)
	svc := f.candidateService()
	ctx := context.Background()

	_, err := svc.Accept(ctx, candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	_, err = svc.Accept(ctx, candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrCandidateAlreadyResolved)
}

func TestAcceptSecondCandidateOnSamePosting(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	first := f.createCandidate(t, posting.ID)
	svc := f.candidateService()
	ctx := context.Background()

	otherUser := models.User{BaseModel: models.BaseModel{ID: newID()}, Email: "other@example.com", Role: models.UserRoleFreelance, IsActive: true}
	require.NoError(t, f.repos.User.Create(ctx, &otherUser))
	other := models.Freelance{BaseModel: models.BaseModel{ID: newID()}, UserID: otherUser.ID, FirstName: "Sam", LastName: "Lee"}
	require.NoError(t, f.repos.Freelance.Create(ctx, &other))
	second := models.Candidate{BaseModel: models.BaseModel{ID: newID()}, JobPostingID: posting.ID, FreelanceID: other.ID, Status: models.CandidateStatusPending}
	require.NoError(t, f.repos.Candidate.Create(ctx, &second))

	_, err := svc.Accept(ctx, first.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)

	// The second candidate is still pending so the status flip succeeds,
	// but provisioning hits the one-project-per-posting guarantee.
	_, err = svc.Accept(ctx, second.ID, f.companyUser.ID, models.UserRoleCompany)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestAcceptDeniedForOtherCompany(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	candidate := f.createCandidate(t, posting.ID)

	intruder := models.User{BaseModel: models.BaseModel{ID: newID()}, Email: "rival@example.com", Role: models.UserRoleCompany, IsActive: true}
	require.NoError(t, f.repos.User.Create(context.Background(), &intruder))

	_, err := f.candidateService().Accept(context.Background(), candidate.ID, intruder.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestRejectThenAcceptFails(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	candidate := f.createCandidate(t, posting.ID)
	svc := f.candidateService()
	ctx := context.Background()

	rejected, err := svc.Reject(ctx, candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusRejected, rejected.Status)

	_, err = svc.Accept(ctx, candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	assert.ErrorIs(t, err, apperrors.ErrCandidateAlreadyResolved)

	// No project was provisioned on the failed path.
	_, err = f.repos.Project.GetByJobPostingID(ctx, posting.ID)
	assert.Error(t, err)
}

func TestAcceptSendsNotification(t *testing.T) {
	f := newFixture(t)
	posting := f.createPosting(t, models.JobPostingStatusPublished)
	candidate := f.createCandidate(t, posting.ID)

	_, err := f.candidateService().Accept(context.Background(), candidate.ID, f.companyUser.ID, models.UserRoleCompany)
	require.NoError(t, err)
	require.Len(t, f.mailer.sends, 1)
	assert.Contains(t, f.mailer.sends[0], f.freelanceUser.Email)
}
