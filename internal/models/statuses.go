package models

type UserRole string
type JobPostingStatus string
type CandidateStatus string
type CheckpointStatus string
type ProjectStatus string
type TransactionType string
type TransactionStatus string
type SkillType string

const (
	UserRoleCompany   UserRole = "company"
	UserRoleFreelance UserRole = "freelance"
	UserRoleAdmin     UserRole = "admin"

	JobPostingStatusDraft     JobPostingStatus = "draft"
	JobPostingStatusPublished JobPostingStatus = "published"
	JobPostingStatusCanceled  JobPostingStatus = "canceled"

	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusAccepted CandidateStatus = "accepted"
	CandidateStatusRejected CandidateStatus = "rejected"

	CheckpointStatusTodo       CheckpointStatus = "todo"
	CheckpointStatusInProgress CheckpointStatus = "in_progress"
	CheckpointStatusDone       CheckpointStatus = "done"
	CheckpointStatusDelayed    CheckpointStatus = "delayed"
	CheckpointStatusCanceled   CheckpointStatus = "canceled"

	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"

	TransactionTypeCharge TransactionType = "charge"
	TransactionTypeRefund TransactionType = "refund"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"

	SkillTypeTechnical SkillType = "technical"
	SkillTypeSoft      SkillType = "soft"
)

// IsTerminal reports whether a checkpoint no longer counts against project
// completion. Delayed is deliberately non-terminal: a delayed checkpoint can
// still be resubmitted and validated.
func (s CheckpointStatus) IsTerminal() bool {
	return s == CheckpointStatusDone || s == CheckpointStatusCanceled
}

func (s CandidateStatus) IsResolved() bool {
	return s == CandidateStatusAccepted || s == CandidateStatusRejected
}
