package auth

import (
	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"
)

// Subject is anything with a closed set of users allowed to act on it.
// Admins bypass the set entirely, see CanAccess.
type Subject interface {
	AllowedUserIDs() []string
}

type jobPostingSubject struct {
	posting *models.JobPosting
}

func (s jobPostingSubject) AllowedUserIDs() []string {
	return []string{s.posting.Company.UserID}
}

// JobPostingSubject scopes an operation to the posting's owning company.
// The posting must be loaded with its Company.
func JobPostingSubject(posting *models.JobPosting) Subject {
	return jobPostingSubject{posting: posting}
}

type projectSubject struct {
	project *models.Project
}

func (s projectSubject) AllowedUserIDs() []string {
	return []string{s.project.Company.UserID, s.project.Freelance.UserID}
}

// ProjectSubject scopes an operation to the project's two parties. The
// project must be loaded with Company and Freelance.
func ProjectSubject(project *models.Project) Subject {
	return projectSubject{project: project}
}

type conversationSubject struct {
	conversation *chat.Conversation
}

func (s conversationSubject) AllowedUserIDs() []string {
	return []string{s.conversation.SenderID, s.conversation.ReceiverID}
}

func ConversationSubject(conversation *chat.Conversation) Subject {
	return conversationSubject{conversation: conversation}
}

// CanAccess reports whether the user may act on the subject. Admins may act
// on anything, everyone else must be in the subject's allowed set.
func CanAccess(userID string, role models.UserRole, subject Subject) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	for _, allowed := range subject.AllowedUserIDs() {
		if allowed != "" && allowed == userID {
			return true
		}
	}
	return false
}
