package service

import (
	"context"
	"fmt"
	"sort"

	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/repository/contract"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/pkg/airtable"
	"term-catalog-be/pkg/llm"
)

// fakeStore is an in-memory stand-in for the relational store, shared
// by the fake repositories so cascades behave like the real schema.
type fakeStore struct {
	terms         map[int]*entity.Term
	audits        map[int]*entity.Audit
	keywords      map[int]*entity.Keyword
	bills         map[int]*entity.LegislativeBill
	nextKeywordID int
	nextBillID    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		terms:         make(map[int]*entity.Term),
		audits:        make(map[int]*entity.Audit),
		keywords:      make(map[int]*entity.Keyword),
		bills:         make(map[int]*entity.LegislativeBill),
		nextKeywordID: 1,
		nextBillID:    1,
	}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) TermRepository() contract.TermRepository {
	return &fakeTermRepo{store: u.store}
}

func (u *fakeUnitOfWork) AuditRepository() contract.AuditRepository {
	return &fakeAuditRepo{store: u.store}
}

func (u *fakeUnitOfWork) KeywordRepository() contract.KeywordRepository {
	return &fakeKeywordRepo{store: u.store}
}

func (u *fakeUnitOfWork) LegislativeBillRepository() contract.LegislativeBillRepository {
	return &fakeBillRepo{store: u.store}
}

type fakeTermRepo struct {
	store *fakeStore
}

func (r *fakeTermRepo) Create(ctx context.Context, term *entity.Term) error {
	if _, ok := r.store.terms[term.Id]; ok {
		return fmt.Errorf("duplicate term id %d", term.Id)
	}
	for _, t := range r.store.terms {
		if t.Name == term.Name {
			return fmt.Errorf("duplicate term name %q", term.Name)
		}
	}
	cp := *term
	r.store.terms[term.Id] = &cp
	return nil
}

func (r *fakeTermRepo) Update(ctx context.Context, term *entity.Term) error {
	cp := *term
	r.store.terms[term.Id] = &cp
	return nil
}

func (r *fakeTermRepo) OverwriteByName(ctx context.Context, name string, term *entity.Term) error {
	for id, t := range r.store.terms {
		if t.Name != name {
			continue
		}
		notes := t.Notes
		cp := *term
		cp.Notes = notes
		delete(r.store.terms, id)
		r.store.terms[cp.Id] = &cp
		// FK cascade on the id change.
		for _, k := range r.store.keywords {
			if k.TermId == id {
				k.TermId = cp.Id
			}
		}
		if a, ok := r.store.audits[id]; ok {
			delete(r.store.audits, id)
			a.Id = cp.Id
			r.store.audits[cp.Id] = a
		}
		return nil
	}
	return nil
}

func (r *fakeTermRepo) Delete(ctx context.Context, id int) error {
	delete(r.store.terms, id)
	delete(r.store.audits, id)
	for kid, k := range r.store.keywords {
		if k.TermId == id {
			delete(r.store.keywords, kid)
		}
	}
	return nil
}

func (r *fakeTermRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(r.store.terms))
	r.store.terms = make(map[int]*entity.Term)
	r.store.audits = make(map[int]*entity.Audit)
	r.store.keywords = make(map[int]*entity.Keyword)
	return n, nil
}

func (r *fakeTermRepo) DeleteAbove(ctx context.Context, limit int) (int64, error) {
	var n int64
	for id := range r.store.terms {
		if id > limit {
			r.Delete(ctx, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeTermRepo) FindByID(ctx context.Context, id int) (*entity.Term, error) {
	t, ok := r.store.terms[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTermRepo) FindByName(ctx context.Context, name string) (*entity.Term, error) {
	for _, t := range r.store.terms {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTermRepo) FindAll(ctx context.Context) ([]*entity.Term, error) {
	ids, _ := r.AllIDs(ctx)
	out := make([]*entity.Term, 0, len(ids))
	for _, id := range ids {
		cp := *r.store.terms[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTermRepo) AllIDs(ctx context.Context) ([]int, error) {
	ids := make([]int, 0, len(r.store.terms))
	for id := range r.store.terms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *fakeTermRepo) MaxID(ctx context.Context) (int, error) {
	max := 0
	for id := range r.store.terms {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (r *fakeTermRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.terms)), nil
}

type fakeAuditRepo struct {
	store *fakeStore
}

func (r *fakeAuditRepo) Create(ctx context.Context, audit *entity.Audit) error {
	if _, ok := r.store.audits[audit.Id]; ok {
		return fmt.Errorf("duplicate audit id %d", audit.Id)
	}
	cp := *audit
	r.store.audits[audit.Id] = &cp
	return nil
}

func (r *fakeAuditRepo) Update(ctx context.Context, audit *entity.Audit) error {
	cp := *audit
	r.store.audits[audit.Id] = &cp
	return nil
}

func (r *fakeAuditRepo) FindByID(ctx context.Context, id int) (*entity.Audit, error) {
	a, ok := r.store.audits[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

type fakeKeywordRepo struct {
	store *fakeStore
}

func (r *fakeKeywordRepo) Create(ctx context.Context, keyword *entity.Keyword) error {
	keyword.Id = r.store.nextKeywordID
	r.store.nextKeywordID++
	cp := *keyword
	r.store.keywords[keyword.Id] = &cp
	return nil
}

func (r *fakeKeywordRepo) FindByKeyword(ctx context.Context, keyword string) (*entity.Keyword, error) {
	for _, k := range r.store.keywords {
		if k.Keyword == keyword {
			cp := *k
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeKeywordRepo) FindFirstByTermID(ctx context.Context, termID int) (*entity.Keyword, error) {
	ids := make([]int, 0, len(r.store.keywords))
	for id := range r.store.keywords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if r.store.keywords[id].TermId == termID {
			cp := *r.store.keywords[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeKeywordRepo) FindAll(ctx context.Context) ([]*entity.Keyword, error) {
	ids := make([]int, 0, len(r.store.keywords))
	for id := range r.store.keywords {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*entity.Keyword, 0, len(ids))
	for _, id := range ids {
		cp := *r.store.keywords[id]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeBillRepo struct {
	store *fakeStore
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *entity.LegislativeBill) error {
	bill.Id = r.store.nextBillID
	r.store.nextBillID++
	cp := *bill
	r.store.bills[bill.Id] = &cp
	return nil
}

func (r *fakeBillRepo) Update(ctx context.Context, bill *entity.LegislativeBill) error {
	cp := *bill
	r.store.bills[bill.Id] = &cp
	return nil
}

func (r *fakeBillRepo) FindByKeys(ctx context.Context, congressID int, legislativeID string) (*entity.LegislativeBill, error) {
	for _, b := range r.store.bills {
		if b.CongressId == congressID && b.LegislativeId == legislativeID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) FindByLegislativeID(ctx context.Context, legislativeID string) (*entity.LegislativeBill, error) {
	for _, b := range r.store.bills {
		if b.LegislativeId == legislativeID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) FindAll(ctx context.Context) ([]*entity.LegislativeBill, error) {
	ids := make([]int, 0, len(r.store.bills))
	for id := range r.store.bills {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*entity.LegislativeBill, 0, len(ids))
	for _, id := range ids {
		cp := *r.store.bills[id]
		out = append(out, &cp)
	}
	return out, nil
}

// stubProvider answers generation calls from a prompt-keyed table.
type stubProvider struct {
	responses map[string]string
	fallback  string
	prompts   []string
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	last := history[len(history)-1].Content
	return p.Generate(ctx, last, options...)
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if res, ok := p.responses[prompt]; ok {
		return res, nil
	}
	return p.fallback, nil
}

// stubRemote records pushes and serves a fixed snapshot.
type stubRemote struct {
	records        []airtable.Record
	pushed         []map[string]string
	deleteAllCalls int
}

func (r *stubRemote) FetchAll(ctx context.Context) ([]airtable.Record, error) {
	return r.records, nil
}

func (r *stubRemote) Push(ctx context.Context, fields map[string]string) (*airtable.Record, error) {
	r.pushed = append(r.pushed, fields)
	return &airtable.Record{ID: fmt.Sprintf("rec%d", len(r.pushed)), Fields: fields}, nil
}

func (r *stubRemote) DeleteAll(ctx context.Context) error {
	r.deleteAllCalls++
	return nil
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
