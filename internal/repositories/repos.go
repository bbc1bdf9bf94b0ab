package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all repositories so that services and tests
// never depend on gorm error values directly.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps gorm errors onto the package sentinels. Requires the
// connection to be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// Repos bundles every repository behind its interface so services can be
// wired once and tests can swap in fakes.
type Repos struct {
	User         UserRepository
	Company      CompanyRepository
	Freelance    FreelanceRepository
	Skill        SkillRepository
	JobPosting   JobPostingRepository
	Candidate    CandidateRepository
	Checkpoint   CheckpointRepository
	Project      ProjectRepository
	Payment      PaymentTransactionRepository
	Document     DocumentRepository
	Conversation ConversationRepository
	Message      MessageRepository
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepository(db),
		Company:      NewCompanyRepository(db),
		Freelance:    NewFreelanceRepository(db),
		Skill:        NewSkillRepository(db),
		JobPosting:   NewJobPostingRepository(db),
		Candidate:    NewCandidateRepository(db),
		Checkpoint:   NewCheckpointRepository(db),
		Project:      NewProjectRepository(db),
		Payment:      NewPaymentTransactionRepository(db),
		Document:     NewDocumentRepository(db),
		Conversation: NewConversationRepository(db),
		Message:      NewMessageRepository(db),
	}
}

// TxManager runs a closure against transaction-scoped repositories. The
// candidate-acceptance chain (status flip + project + conversation + welcome
// message) commits or rolls back as one unit through it.
type TxManager interface {
	Do(ctx context.Context, fn func(r *Repos) error) error
}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) Do(ctx context.Context, fn func(r *Repos) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}
