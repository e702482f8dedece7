package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/logger"
	"term-catalog-be/internal/repository/unitofwork"
	"term-catalog-be/pkg/airtable"
	"term-catalog-be/pkg/retry"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	exportBatchSize   = 10
	recordPacing      = 100 * time.Millisecond
	auditFetchRetries = 5
)

// RemoteStore is the slice of the remote client the sync paths use.
type RemoteStore interface {
	FetchAll(ctx context.Context) ([]airtable.Record, error)
	Push(ctx context.Context, fields map[string]string) (*airtable.Record, error)
	DeleteAll(ctx context.Context) error
}

type ISyncService interface {
	// Export mirrors the full local term corpus to the remote store:
	// wipe remote, then push every term with its audit annotations.
	Export(ctx context.Context) (*dto.SyncSummary, error)
	// Import reconciles local state against the remote row set: local
	// orphans are deleted, every remote record is upserted. Commits
	// per record so a failed run is resumable by re-running it.
	Import(ctx context.Context) (*dto.SyncSummary, error)
	TestFetch(ctx context.Context) ([]*dto.RemoteRecordResponse, error)
}

type syncService struct {
	uowFactory unitofwork.RepositoryFactory
	remote     RemoteStore
	log        logger.ILogger
	auditCache *cache.Cache
}

func NewSyncService(
	uowFactory unitofwork.RepositoryFactory,
	remote RemoteStore,
	log logger.ILogger,
) ISyncService {
	return &syncService{
		uowFactory: uowFactory,
		remote:     remote,
		log:        log,
		auditCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

type auditAnnotation struct {
	FAQ            string
	Summary        string
	TechnicalStuff string
	Notes          string
}

// fetchAuditAnnotation reads the audit checklist for one term, retrying
// transient store errors with a doubling delay. Exhausted retries
// degrade to an all-false annotation instead of failing the export.
func (c *syncService) fetchAuditAnnotation(ctx context.Context, uow unitofwork.UnitOfWork, runID string, termID int) auditAnnotation {
	key := runID + ":" + strconv.Itoa(termID)
	if cached, ok := c.auditCache.Get(key); ok {
		return cached.(auditAnnotation)
	}

	var audit *entity.Audit
	err := retry.Do(ctx, auditFetchRetries, recordPacing, func() error {
		var err error
		audit, err = uow.AuditRepository().FindByID(ctx, termID)
		return err
	})

	annotation := auditAnnotation{FAQ: "False", Summary: "False", TechnicalStuff: "False"}
	if err != nil {
		c.log.Error("sync", "audit fetch failed, exporting empty annotation", map[string]interface{}{
			"run_id":  runID,
			"term_id": termID,
			"error":   err.Error(),
		})
		return annotation
	}
	if audit != nil {
		annotation = auditAnnotation{
			FAQ:            formatBoolean(audit.FAQ),
			Summary:        formatBoolean(audit.Summary),
			TechnicalStuff: formatBoolean(audit.TechnicalStuff),
			Notes:          audit.Notes,
		}
	}
	c.auditCache.Set(key, annotation, cache.DefaultExpiration)
	return annotation
}

func (c *syncService) Export(ctx context.Context) (*dto.SyncSummary, error) {
	runID := uuid.NewString()
	uow := c.uowFactory.NewUnitOfWork(ctx)

	terms, err := uow.TermRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// The remote store is a mirror, not a merge target: every export
	// starts from an empty table.
	if err := c.remote.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		c.log.Info("sync", "no local terms, remote wiped", map[string]interface{}{"run_id": runID})
		return &dto.SyncSummary{Exported: 0}, nil
	}

	records := make([]map[string]string, 0, len(terms))
	for _, term := range terms {
		annotation := c.fetchAuditAnnotation(ctx, uow, runID, term.Id)
		records = append(records, exportFields(term, annotation))
		time.Sleep(recordPacing)
	}

	for i := 0; i < len(records); i += exportBatchSize {
		end := i + exportBatchSize
		if end > len(records) {
			end = len(records)
		}
		for _, fields := range records[i:end] {
			if _, err := c.remote.Push(ctx, fields); err != nil {
				return nil, err
			}
		}
	}

	c.log.Info("sync", "export finished", map[string]interface{}{
		"run_id":   runID,
		"exported": len(records),
	})
	return &dto.SyncSummary{Exported: len(records)}, nil
}

func (c *syncService) Import(ctx context.Context) (*dto.SyncSummary, error) {
	runID := uuid.NewString()

	records, err := c.remote.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	fetchedIDs := make(map[int]bool, len(records))
	for _, record := range records {
		id, err := strconv.Atoi(record.Fields["id"])
		if err != nil {
			continue
		}
		fetchedIDs[id] = true
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	localIDs, err := uow.TermRepository().AllIDs(ctx)
	if err != nil {
		return nil, err
	}

	deleted := 0
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	for _, id := range localIDs {
		if fetchedIDs[id] {
			continue
		}
		if err := uow.TermRepository().Delete(ctx, id); err != nil {
			uow.Rollback()
			return nil, err
		}
		deleted++
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	imported := 0
	for _, record := range records {
		if err := c.upsertRecord(ctx, record); err != nil {
			c.log.Error("sync", "import aborted", map[string]interface{}{
				"run_id":    runID,
				"record_id": record.ID,
				"error":     err.Error(),
			})
			return nil, err
		}
		imported++
		time.Sleep(recordPacing)
	}

	c.log.Info("sync", "import finished", map[string]interface{}{
		"run_id":   runID,
		"imported": imported,
		"deleted":  deleted,
	})
	return &dto.SyncSummary{Imported: imported, Deleted: deleted}, nil
}

// upsertRecord applies one remote record in its own transaction.
func (c *syncService) upsertRecord(ctx context.Context, record airtable.Record) error {
	id, err := strconv.Atoi(record.Fields["id"])
	if err != nil {
		// Rows without a numeric id are foreign to this catalog.
		return nil
	}
	name := record.Fields["name"]

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	term := termFromFields(id, record.Fields)

	existing, err := uow.TermRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing != nil {
		// Local editorial notes never round-trip through the remote
		// store; keep them across the overwrite.
		term.Notes = existing.Notes
		if err := uow.TermRepository().Update(ctx, term); err != nil {
			return err
		}
	} else {
		byName, err := uow.TermRepository().FindByName(ctx, name)
		if err != nil {
			return err
		}
		if byName != nil {
			// The remote renumbered this term: rewrite the row in
			// place, primary key included.
			if err := uow.TermRepository().OverwriteByName(ctx, name, term); err != nil {
				return err
			}
		} else if err := uow.TermRepository().Create(ctx, term); err != nil {
			return err
		}
	}

	audit := &entity.Audit{
		Id:             id,
		FAQ:            parseBoolean(record.Fields["FAQ"]),
		Summary:        parseBoolean(record.Fields["Summary"]),
		TechnicalStuff: parseBoolean(record.Fields["Technical_Stuff"]),
		Notes:          record.Fields["notes"],
	}
	existingAudit, err := uow.AuditRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existingAudit != nil {
		if err := uow.AuditRepository().Update(ctx, audit); err != nil {
			return err
		}
	} else if err := uow.AuditRepository().Create(ctx, audit); err != nil {
		return err
	}

	return uow.Commit()
}

func (c *syncService) TestFetch(ctx context.Context) ([]*dto.RemoteRecordResponse, error) {
	records, err := c.remote.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RemoteRecordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, &dto.RemoteRecordResponse{
			Id:     record.ID,
			Fields: record.Fields,
		})
	}
	return result, nil
}

func exportFields(term *entity.Term, annotation auditAnnotation) map[string]string {
	fields := map[string]string{
		"id":                strconv.Itoa(term.Id),
		"name":              term.Name,
		"faqTitle":          term.FaqTitle,
		"faqQ1":             term.FaqQ1,
		"faqA1":             term.FaqA1,
		"faqQ2":             term.FaqQ2,
		"faqA2":             term.FaqA2,
		"faqQ3":             term.FaqQ3,
		"faqA3":             term.FaqA3,
		"faqQ4":             term.FaqQ4,
		"faqA4":             term.FaqA4,
		"faqQ5":             term.FaqQ5,
		"faqA5":             term.FaqA5,
		"highKeywords":      term.HighKeywords,
		"mediumKeywords":    term.MediumKeywords,
		"lowKeywords":       term.LowKeywords,
		"faqHighKeywords":   term.FaqHighKeywords,
		"faqMediumKeywords": term.FaqMediumKeywords,
		"faqLowKeywords":    term.FaqLowKeywords,
		"prompt":            term.Prompt,
		"response":          term.Response,
		"FAQ":               annotation.FAQ,
		"Summary":           annotation.Summary,
		"Technical_Stuff":   annotation.TechnicalStuff,
		"notes":             annotation.Notes,
	}
	for k, v := range fields {
		fields[k] = airtable.Sanitize(v)
	}
	return fields
}

func termFromFields(id int, fields map[string]string) *entity.Term {
	return &entity.Term{
		Id:                id,
		Name:              fields["name"],
		FaqTitle:          fields["faqTitle"],
		FaqQ1:             fields["faqQ1"],
		FaqA1:             fields["faqA1"],
		FaqQ2:             fields["faqQ2"],
		FaqA2:             fields["faqA2"],
		FaqQ3:             fields["faqQ3"],
		FaqA3:             fields["faqA3"],
		FaqQ4:             fields["faqQ4"],
		FaqA4:             fields["faqA4"],
		FaqQ5:             fields["faqQ5"],
		FaqA5:             fields["faqA5"],
		HighKeywords:      fields["highKeywords"],
		MediumKeywords:    fields["mediumKeywords"],
		LowKeywords:       fields["lowKeywords"],
		FaqHighKeywords:   fields["faqHighKeywords"],
		FaqMediumKeywords: fields["faqMediumKeywords"],
		FaqLowKeywords:    fields["faqLowKeywords"],
		Prompt:            fields["prompt"],
		Response:          fields["response"],
	}
}

func formatBoolean(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func parseBoolean(v string) bool {
	return strings.EqualFold(v, "true")
}
