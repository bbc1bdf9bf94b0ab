package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"freehunt_backend/internal/models"
	"freehunt_backend/internal/models/chat"
	"freehunt_backend/internal/payment"
	"freehunt_backend/internal/repositories"

	"github.com/google/uuid"
)

// memRepos is a single in-memory store behind every repository interface.
// The per-interface adapters below share it so cross-entity reads (preloads
// in the real layer) can be composed from the maps.
type memRepos struct {
	mu sync.Mutex

	users         map[string]models.User
	companies     map[string]models.Company
	freelances    map[string]models.Freelance
	skills        map[string]models.Skill
	postings      map[string]models.JobPosting
	candidates    map[string]models.Candidate
	checkpoints   map[string]models.Checkpoint
	projects      map[string]models.Project
	payments      map[string]models.PaymentTransaction
	documents     map[string]models.Document
	conversations map[string]chat.Conversation
	messages      map[string]chat.Message
}

func newMemRepos() *memRepos {
	return &memRepos{
		users:         make(map[string]models.User),
		companies:     make(map[string]models.Company),
		freelances:    make(map[string]models.Freelance),
		skills:        make(map[string]models.Skill),
		postings:      make(map[string]models.JobPosting),
		candidates:    make(map[string]models.Candidate),
		checkpoints:   make(map[string]models.Checkpoint),
		projects:      make(map[string]models.Project),
		payments:      make(map[string]models.PaymentTransaction),
		documents:     make(map[string]models.Document),
		conversations: make(map[string]chat.Conversation),
		messages:      make(map[string]chat.Message),
	}
}

func (m *memRepos) repos() *repositories.Repos {
	return &repositories.Repos{
		User:         userRepo{m},
		Company:      companyRepo{m},
		Freelance:    freelanceRepo{m},
		Skill:        skillRepo{m},
		JobPosting:   jobPostingRepo{m},
		Candidate:    candidateRepo{m},
		Checkpoint:   checkpointRepo{m},
		Project:      projectRepo{m},
		Payment:      paymentRepo{m},
		Document:     documentRepo{m},
		Conversation: conversationRepo{m},
		Message:      messageRepo{m},
	}
}

func newID() string { return uuid.NewString() }

// fill helpers emulate the preloads of the gorm layer.

func (m *memRepos) fillCompany(c *models.Company) {
	if u, ok := m.users[c.UserID]; ok {
		c.User = u
	}
}

func (m *memRepos) fillFreelance(f *models.Freelance) {
	if u, ok := m.users[f.UserID]; ok {
		f.User = u
	}
}

func (m *memRepos) fillPosting(p *models.JobPosting) {
	if c, ok := m.companies[p.CompanyID]; ok {
		m.fillCompany(&c)
		p.Company = c
	}
	p.Checkpoints = nil
	for _, cp := range m.checkpoints {
		if cp.JobPostingID == p.ID {
			p.Checkpoints = append(p.Checkpoints, cp)
		}
	}
	sort.Slice(p.Checkpoints, func(i, j int) bool {
		return p.Checkpoints[i].Date.Before(p.Checkpoints[j].Date)
	})
}

func (m *memRepos) fillProject(p *models.Project) {
	if c, ok := m.companies[p.CompanyID]; ok {
		m.fillCompany(&c)
		p.Company = c
	}
	if f, ok := m.freelances[p.FreelanceID]; ok {
		m.fillFreelance(&f)
		p.Freelance = f
	}
}

// --- user ---

type userRepo struct{ m *memRepos }

func (r userRepo) Create(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = newID()
	}
	r.m.users[user.ID] = *user
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// --- company ---

type companyRepo struct{ m *memRepos }

func (r companyRepo) Create(_ context.Context, company *models.Company) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if company.ID == "" {
		company.ID = newID()
	}
	r.m.companies[company.ID] = *company
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (*models.Company, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.companies[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.m.fillCompany(&c)
	return &c, nil
}

func (r companyRepo) GetByUserID(_ context.Context, userID string) (*models.Company, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, c := range r.m.companies {
		if c.UserID == userID {
			r.m.fillCompany(&c)
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r companyRepo) Update(_ context.Context, company *models.Company) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.companies[company.ID] = *company
	return nil
}

// --- freelance ---

type freelanceRepo struct{ m *memRepos }

func (r freelanceRepo) Create(_ context.Context, freelance *models.Freelance) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if freelance.ID == "" {
		freelance.ID = newID()
	}
	r.m.freelances[freelance.ID] = *freelance
	return nil
}

func (r freelanceRepo) GetByID(_ context.Context, id string) (*models.Freelance, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	f, ok := r.m.freelances[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.m.fillFreelance(&f)
	return &f, nil
}

func (r freelanceRepo) GetByUserID(_ context.Context, userID string) (*models.Freelance, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, f := range r.m.freelances {
		if f.UserID == userID {
			r.m.fillFreelance(&f)
			return &f, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r freelanceRepo) Update(_ context.Context, freelance *models.Freelance) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.freelances[freelance.ID] = *freelance
	return nil
}

func (r freelanceRepo) ReplaceSkills(_ context.Context, freelance *models.Freelance, skills []models.Skill) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	f := r.m.freelances[freelance.ID]
	f.Skills = skills
	r.m.freelances[freelance.ID] = f
	return nil
}

// --- skill ---

type skillRepo struct{ m *memRepos }

func (r skillRepo) Create(_ context.Context, skill *models.Skill) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.skills {
		if s.Name == skill.Name {
			return repositories.ErrDuplicate
		}
	}
	if skill.ID == "" {
		skill.ID = newID()
	}
	r.m.skills[skill.ID] = *skill
	return nil
}

func (r skillRepo) List(_ context.Context) ([]models.Skill, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Skill
	for _, s := range r.m.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r skillRepo) GetByIDs(_ context.Context, ids []string) ([]models.Skill, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Skill
	for _, id := range ids {
		if s, ok := r.m.skills[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// --- job posting ---

type jobPostingRepo struct{ m *memRepos }

func (r jobPostingRepo) Create(_ context.Context, posting *models.JobPosting) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if posting.ID == "" {
		posting.ID = newID()
	}
	for i := range posting.Checkpoints {
		cp := &posting.Checkpoints[i]
		if cp.ID == "" {
			cp.ID = newID()
		}
		cp.JobPostingID = posting.ID
		r.m.checkpoints[cp.ID] = *cp
	}
	stored := *posting
	stored.Checkpoints = nil
	r.m.postings[posting.ID] = stored
	return nil
}

func (r jobPostingRepo) GetByID(_ context.Context, id string) (*models.JobPosting, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.postings[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.m.fillPosting(&p)
	return &p, nil
}

func (r jobPostingRepo) Update(_ context.Context, posting *models.JobPosting) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.postings[posting.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *posting
	stored.Checkpoints = nil
	r.m.postings[posting.ID] = stored
	return nil
}

func (r jobPostingRepo) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.postings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.m.postings, id)
	return nil
}

func (r jobPostingRepo) ReplaceSkills(_ context.Context, posting *models.JobPosting, skills []models.Skill) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p := r.m.postings[posting.ID]
	p.Skills = skills
	r.m.postings[posting.ID] = p
	return nil
}

func (r jobPostingRepo) ListByCompany(_ context.Context, companyID string) ([]models.JobPosting, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.JobPosting
	for _, p := range r.m.postings {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r jobPostingRepo) SearchPublished(_ context.Context, _ repositories.JobPostingSearch) ([]models.JobPosting, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.JobPosting
	for _, p := range r.m.postings {
		if p.Status == models.JobPostingStatusPublished {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

// --- candidate ---

type candidateRepo struct{ m *memRepos }

func (r candidateRepo) Create(_ context.Context, candidate *models.Candidate) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, c := range r.m.candidates {
		if c.JobPostingID == candidate.JobPostingID && c.FreelanceID == candidate.FreelanceID {
			return repositories.ErrDuplicate
		}
	}
	if candidate.ID == "" {
		candidate.ID = newID()
	}
	r.m.candidates[candidate.ID] = *candidate
	return nil
}

func (r candidateRepo) GetByID(_ context.Context, id string) (*models.Candidate, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.candidates[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if p, ok := r.m.postings[c.JobPostingID]; ok {
		r.m.fillPosting(&p)
		c.JobPosting = p
	}
	if f, ok := r.m.freelances[c.FreelanceID]; ok {
		r.m.fillFreelance(&f)
		c.Freelance = f
	}
	return &c, nil
}

func (r candidateRepo) ListByJobPosting(_ context.Context, jobPostingID string) ([]models.Candidate, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Candidate
	for _, c := range r.m.candidates {
		if c.JobPostingID == jobPostingID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r candidateRepo) ListByFreelance(_ context.Context, freelanceID string) ([]models.Candidate, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Candidate
	for _, c := range r.m.candidates {
		if c.FreelanceID == freelanceID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r candidateRepo) UpdateStatusIfPending(_ context.Context, id string, status models.CandidateStatus) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.candidates[id]
	if !ok || c.Status != models.CandidateStatusPending {
		return 0, nil
	}
	c.Status = status
	r.m.candidates[id] = c
	return 1, nil
}

// --- checkpoint ---

type checkpointRepo struct{ m *memRepos }

func (r checkpointRepo) Create(_ context.Context, checkpoint *models.Checkpoint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if checkpoint.ID == "" {
		checkpoint.ID = newID()
	}
	r.m.checkpoints[checkpoint.ID] = *checkpoint
	return nil
}

func (r checkpointRepo) GetByID(_ context.Context, id string) (*models.Checkpoint, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp, ok := r.m.checkpoints[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &cp, nil
}

func (r checkpointRepo) Update(_ context.Context, checkpoint *models.Checkpoint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.checkpoints[checkpoint.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.m.checkpoints[checkpoint.ID] = *checkpoint
	return nil
}

func (r checkpointRepo) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.checkpoints[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.m.checkpoints, id)
	return nil
}

func (r checkpointRepo) ListByJobPosting(_ context.Context, jobPostingID string) ([]models.Checkpoint, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Checkpoint
	for _, cp := range r.m.checkpoints {
		if cp.JobPostingID == jobPostingID {
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r checkpointRepo) MarkOverdueDelayed(_ context.Context, now time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var flagged int64
	for id, cp := range r.m.checkpoints {
		active := cp.Status == models.CheckpointStatusTodo || cp.Status == models.CheckpointStatusInProgress
		if active && cp.Date.Before(now) && cp.SubmittedAt == nil {
			cp.Status = models.CheckpointStatusDelayed
			r.m.checkpoints[id] = cp
			flagged++
		}
	}
	return flagged, nil
}

// --- project ---

type projectRepo struct{ m *memRepos }

func (r projectRepo) Create(_ context.Context, project *models.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, p := range r.m.projects {
		if p.JobPostingID == project.JobPostingID {
			return repositories.ErrDuplicate
		}
	}
	if project.ID == "" {
		project.ID = newID()
	}
	r.m.projects[project.ID] = *project
	return nil
}

func (r projectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.projects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.m.fillProject(&p)
	return &p, nil
}

func (r projectRepo) GetByJobPostingID(_ context.Context, jobPostingID string) (*models.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, p := range r.m.projects {
		if p.JobPostingID == jobPostingID {
			r.m.fillProject(&p)
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r projectRepo) ListByCompany(_ context.Context, companyID string) ([]models.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Project
	for _, p := range r.m.projects {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r projectRepo) ListByFreelance(_ context.Context, freelanceID string) ([]models.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Project
	for _, p := range r.m.projects {
		if p.FreelanceID == freelanceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r projectRepo) Update(_ context.Context, project *models.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	stored := *project
	stored.Company = models.Company{}
	stored.Freelance = models.Freelance{}
	stored.JobPosting = models.JobPosting{}
	r.m.projects[project.ID] = stored
	return nil
}

// --- payment transaction ---

type paymentRepo struct{ m *memRepos }

func (r paymentRepo) Create(_ context.Context, tx *models.PaymentTransaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if tx.ID == "" {
		tx.ID = newID()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.m.payments[tx.ID] = *tx
	return nil
}

func (r paymentRepo) Update(_ context.Context, tx *models.PaymentTransaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.payments[tx.ID] = *tx
	return nil
}

func (r paymentRepo) ListByJobPosting(_ context.Context, jobPostingID string) ([]models.PaymentTransaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.PaymentTransaction
	for _, tx := range r.m.payments {
		if tx.JobPostingID == jobPostingID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r paymentRepo) LatestSucceededCharge(_ context.Context, jobPostingID string) (*models.PaymentTransaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var latest *models.PaymentTransaction
	for _, tx := range r.m.payments {
		tx := tx
		if tx.JobPostingID != jobPostingID ||
			tx.Type != models.TransactionTypeCharge ||
			tx.Status != models.TransactionStatusSucceeded {
			continue
		}
		if latest == nil || tx.CreatedAt.After(latest.CreatedAt) {
			latest = &tx
		}
	}
	if latest == nil {
		return nil, repositories.ErrNotFound
	}
	return latest, nil
}

// --- document ---

type documentRepo struct{ m *memRepos }

func (r documentRepo) Create(_ context.Context, document *models.Document) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if document.ID == "" {
		document.ID = newID()
	}
	r.m.documents[document.ID] = *document
	return nil
}

func (r documentRepo) GetByID(_ context.Context, id string) (*models.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.documents[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &d, nil
}

func (r documentRepo) ListByUser(_ context.Context, userID string) ([]models.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Document
	for _, d := range r.m.documents {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- conversation ---

type conversationRepo struct{ m *memRepos }

func (r conversationRepo) Create(_ context.Context, conversation *chat.Conversation) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if conversation.ID == "" {
		conversation.ID = newID()
	}
	r.m.conversations[conversation.ID] = *conversation
	return nil
}

func (r conversationRepo) GetByID(_ context.Context, id string) (*chat.Conversation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.conversations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r conversationRepo) ListByUser(_ context.Context, userID string) ([]chat.Conversation, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []chat.Conversation
	for _, c := range r.m.conversations {
		if c.SenderID == userID || c.ReceiverID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r conversationRepo) SetProjectID(_ context.Context, conversationID, projectID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.conversations[conversationID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.ProjectID = &projectID
	r.m.conversations[conversationID] = c
	return nil
}

// --- message ---

type messageRepo struct{ m *memRepos }

func (r messageRepo) Create(_ context.Context, message *chat.Message) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if message.ID == "" {
		message.ID = newID()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.m.messages[message.ID] = *message
	return nil
}

func (r messageRepo) ListByConversation(_ context.Context, conversationID string, _, _ int) ([]chat.Message, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []chat.Message
	for _, msg := range r.m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r messageRepo) CountByConversation(_ context.Context, conversationID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var count int64
	for _, msg := range r.m.messages {
		if msg.ConversationID == conversationID {
			count++
		}
	}
	return count, nil
}

// --- tx manager ---

// memTxManager runs the closure against the same store; rollback is not
// simulated, the tests assert on the error paths before any write happens.
// before, when set, runs at transaction start to interleave a concurrent
// write ahead of the closure's reads.
type memTxManager struct {
	repos  *repositories.Repos
	before func(r *repositories.Repos)
}

func (m memTxManager) Do(_ context.Context, fn func(r *repositories.Repos) error) error {
	if m.before != nil {
		m.before(m.repos)
	}
	return fn(m.repos)
}

// --- payment gateway ---

type fakeGateway struct {
	chargeResult *payment.ChargeResult
	chargeErr    error
	refundResult *payment.RefundResult
	refundErr    error

	charges []float64
	refunds []string
}

func (g *fakeGateway) Charge(_ context.Context, _ string, amount float64, _ string) (*payment.ChargeResult, error) {
	g.charges = append(g.charges, amount)
	if g.chargeErr != nil {
		return nil, g.chargeErr
	}
	if g.chargeResult != nil {
		return g.chargeResult, nil
	}
	return &payment.ChargeResult{Success: true, ChargeID: "ch_" + newID()[:8]}, nil
}

func (g *fakeGateway) Refund(_ context.Context, chargeID string, amount float64) (*payment.RefundResult, error) {
	g.refunds = append(g.refunds, chargeID)
	if g.refundErr != nil {
		return nil, g.refundErr
	}
	if g.refundResult != nil {
		return g.refundResult, nil
	}
	return &payment.RefundResult{Success: true, RefundID: "re_" + newID()[:8], Amount: amount, Status: "succeeded"}, nil
}

// --- mailer ---

type fakeMailer struct {
	mu    sync.Mutex
	sends []string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, to+": "+subject)
	return nil
}
