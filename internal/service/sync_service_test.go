package service

import (
	"context"
	"reflect"
	"testing"

	"term-catalog-be/internal/entity"
	"term-catalog-be/pkg/airtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteRecord(id, name string, extra map[string]string) airtable.Record {
	fields := map[string]string{
		"id":   id,
		"name": name,
	}
	for k, v := range extra {
		fields[k] = v
	}
	return airtable.Record{ID: "rec" + id, Fields: fields}
}

func TestImportDeletesLocalOrphans(t *testing.T) {
	store := newFakeStore()
	store.terms[1] = &entity.Term{Id: 1, Name: "Alpha"}
	store.terms[2] = &entity.Term{Id: 2, Name: "Beta"}
	store.audits[2] = &entity.Audit{Id: 2, FAQ: true}
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "Beta", Priority: "high", TermId: 2}

	remote := &stubRemote{records: []airtable.Record{
		remoteRecord("1", "Alpha", nil),
	}}
	svc := NewSyncService(newFakeFactory(store), remote, nopLogger{})

	res, err := svc.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Deleted)

	assert.NotContains(t, store.terms, 2)
	assert.NotContains(t, store.audits, 2)
	assert.Empty(t, store.keywords)
}

func TestImportUpsertsTermAndAudit(t *testing.T) {
	store := newFakeStore()
	store.terms[1] = &entity.Term{Id: 1, Name: "Old Name", Notes: "local note"}

	remote := &stubRemote{records: []airtable.Record{
		remoteRecord("1", "Alpha", map[string]string{
			"faqTitle": "Frequently Asked Questions about Alpha",
			"FAQ":      "True",
			"Summary":  "False",
			"notes":    "remote audit note",
		}),
		remoteRecord("2", "Beta", nil),
	}}
	svc := NewSyncService(newFakeFactory(store), remote, nopLogger{})

	_, err := svc.Import(context.Background())
	require.NoError(t, err)

	alpha := store.terms[1]
	require.NotNil(t, alpha)
	assert.Equal(t, "Alpha", alpha.Name)
	assert.Equal(t, "Frequently Asked Questions about Alpha", alpha.FaqTitle)
	// Local editorial notes survive the remote overwrite.
	assert.Equal(t, "local note", alpha.Notes)

	require.NotNil(t, store.terms[2])
	assert.Equal(t, "Beta", store.terms[2].Name)

	audit := store.audits[1]
	require.NotNil(t, audit)
	assert.True(t, audit.FAQ)
	assert.False(t, audit.Summary)
	assert.Equal(t, "remote audit note", audit.Notes)
}

func TestImportOverwritesRenumberedTerm(t *testing.T) {
	store := newFakeStore()
	store.terms[2] = &entity.Term{Id: 2, Name: "Beta", Notes: "keep me"}
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "Beta", Priority: "high", TermId: 2}

	// The remote renumbered Beta to 5 and reuses 2 for a new term.
	remote := &stubRemote{records: []airtable.Record{
		remoteRecord("5", "Beta", map[string]string{"response": "fresh"}),
		remoteRecord("2", "Delta", nil),
	}}
	svc := NewSyncService(newFakeFactory(store), remote, nopLogger{})

	_, err := svc.Import(context.Background())
	require.NoError(t, err)

	beta := store.terms[5]
	require.NotNil(t, beta)
	assert.Equal(t, "Beta", beta.Name)
	assert.Equal(t, "fresh", beta.Response)
	assert.Equal(t, "keep me", beta.Notes)

	require.NotNil(t, store.terms[2])
	assert.Equal(t, "Delta", store.terms[2].Name)

	// The keyword row followed the id change.
	assert.Equal(t, 5, store.keywords[1].TermId)
}

func TestImportIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.terms[1] = &entity.Term{Id: 1, Name: "Old", Response: "stale"}
	store.terms[3] = &entity.Term{Id: 3, Name: "Gone"}

	remote := &stubRemote{records: []airtable.Record{
		remoteRecord("1", "Alpha", map[string]string{"response": "body", "FAQ": "True"}),
		remoteRecord("2", "Beta", map[string]string{"Summary": "True"}),
	}}
	svc := NewSyncService(newFakeFactory(store), remote, nopLogger{})

	_, err := svc.Import(context.Background())
	require.NoError(t, err)

	termsAfterFirst := make(map[int]entity.Term)
	for id, term := range store.terms {
		termsAfterFirst[id] = *term
	}
	auditsAfterFirst := make(map[int]entity.Audit)
	for id, audit := range store.audits {
		auditsAfterFirst[id] = *audit
	}

	_, err = svc.Import(context.Background())
	require.NoError(t, err)

	termsAfterSecond := make(map[int]entity.Term)
	for id, term := range store.terms {
		termsAfterSecond[id] = *term
	}
	auditsAfterSecond := make(map[int]entity.Audit)
	for id, audit := range store.audits {
		auditsAfterSecond[id] = *audit
	}

	assert.True(t, reflect.DeepEqual(termsAfterFirst, termsAfterSecond))
	assert.True(t, reflect.DeepEqual(auditsAfterFirst, auditsAfterSecond))
}

func TestExportWipesRemoteAndPushesAllTerms(t *testing.T) {
	store := newFakeStore()
	store.terms[1] = &entity.Term{Id: 1, Name: "Alpha", Response: "état of play", Notes: "never exported"}
	store.terms[2] = &entity.Term{Id: 2, Name: "Beta"}
	store.audits[1] = &entity.Audit{Id: 1, FAQ: true, Notes: "checked"}

	remote := &stubRemote{}
	svc := NewSyncService(newFakeFactory(store), remote, nopLogger{})

	res, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Exported)
	assert.Equal(t, 1, remote.deleteAllCalls)
	require.Len(t, remote.pushed, 2)

	first := remote.pushed[0]
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "Alpha", first["name"])
	// Non-ASCII is escaped for the remote store.
	assert.Equal(t, `\u00e9tat of play`, first["response"])
	assert.Equal(t, "True", first["FAQ"])
	assert.Equal(t, "False", first["Summary"])
	assert.Equal(t, "False", first["Technical_Stuff"])
	// The exported notes column carries the audit notes, not the
	// term's local editorial notes.
	assert.Equal(t, "checked", first["notes"])

	second := remote.pushed[1]
	assert.Equal(t, "2", second["id"])
	assert.Equal(t, "False", second["FAQ"])
	assert.Equal(t, "", second["notes"])
}

func TestExportEmptyCorpusStillWipesRemote(t *testing.T) {
	remote := &stubRemote{}
	svc := NewSyncService(newFakeFactory(newFakeStore()), remote, nopLogger{})

	res, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Exported)
	assert.Equal(t, 1, remote.deleteAllCalls)
	assert.Empty(t, remote.pushed)
}

func TestTestFetchReturnsRawRecords(t *testing.T) {
	remote := &stubRemote{records: []airtable.Record{
		remoteRecord("1", "Alpha", nil),
	}}
	svc := NewSyncService(newFakeFactory(newFakeStore()), remote, nopLogger{})

	res, err := svc.TestFetch(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "rec1", res[0].Id)
	assert.Equal(t, "Alpha", res[0].Fields["name"])
}
