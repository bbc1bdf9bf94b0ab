package auth

import (
	"testing"

	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessJobPosting(t *testing.T) {
	posting := &models.JobPosting{
		Company: models.Company{UserID: "owner"},
	}
	subject := JobPostingSubject(posting)

	assert.True(t, CanAccess("owner", models.UserRoleCompany, subject))
	assert.False(t, CanAccess("stranger", models.UserRoleCompany, subject))
	assert.False(t, CanAccess("stranger", models.UserRoleFreelance, subject))
	assert.True(t, CanAccess("anyone", models.UserRoleAdmin, subject))
}

func TestCanAccessProject(t *testing.T) {
	project := &models.Project{
		Company:   models.Company{UserID: "company-user"},
		Freelance: models.Freelance{UserID: "freelance-user"},
	}
	subject := ProjectSubject(project)

	assert.True(t, CanAccess("company-user", models.UserRoleCompany, subject))
	assert.True(t, CanAccess("freelance-user", models.UserRoleFreelance, subject))
	assert.False(t, CanAccess("stranger", models.UserRoleFreelance, subject))
}

func TestCanAccessConversation(t *testing.T) {
	conversation := &chat.Conversation{SenderID: "a", ReceiverID: "b"}
	subject := ConversationSubject(conversation)

	assert.True(t, CanAccess("a", models.UserRoleCompany, subject))
	assert.True(t, CanAccess("b", models.UserRoleFreelance, subject))
	assert.False(t, CanAccess("c", models.UserRoleFreelance, subject))
}

func TestCanAccessEmptyUserNeverMatches(t *testing.T) {
	// A subject with an unloaded association must not grant access to an
	// anonymous caller.
	posting := &models.JobPosting{}
	assert.False(t, CanAccess("", models.UserRoleCompany, JobPostingSubject(posting)))
}
