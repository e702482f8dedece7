package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"
	"term-catalog-be/pkg/prompts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillMaintainsCharcount(t *testing.T) {
	store := newFakeStore()
	svc := NewLegislationService(newFakeFactory(store), &stubProvider{}, testAIConfig())

	res, err := svc.Create(context.Background(), &dto.CreateBillRequest{
		LegislativeId: "hr-1234",
		CongressId:    118,
		Text:          "Séance text", // multibyte rune counts once
	})
	require.NoError(t, err)
	assert.Equal(t, utf8.RuneCountInString("Séance text"), res.Charcount)
}

func TestCreateBillRejectsDuplicateLegislativeID(t *testing.T) {
	store := newFakeStore()
	store.bills[1] = &entity.LegislativeBill{Id: 1, LegislativeId: "hr-1234", CongressId: 117}

	svc := NewLegislationService(newFakeFactory(store), &stubProvider{}, testAIConfig())
	_, err := svc.Create(context.Background(), &dto.CreateBillRequest{
		LegislativeId: "hr-1234",
		CongressId:    118,
	})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
}

func TestUpdateBillRecomputesCharcountOnTextChange(t *testing.T) {
	store := newFakeStore()
	store.bills[1] = &entity.LegislativeBill{
		Id: 1, LegislativeId: "hr-1", CongressId: 118,
		Text: "old", Charcount: 3,
	}

	svc := NewLegislationService(newFakeFactory(store), &stubProvider{}, testAIConfig())
	res, err := svc.Update(context.Background(), &dto.UpdateBillRequest{
		CongressIdParam:    118,
		LegislativeIdParam: "hr-1",
		Text:               strptr("much longer text"),
	})
	require.NoError(t, err)
	assert.Equal(t, len("much longer text"), res.Charcount)

	// A write that leaves text alone must not disturb the count.
	res, err = svc.Update(context.Background(), &dto.UpdateBillRequest{
		CongressIdParam:    118,
		LegislativeIdParam: "hr-1",
		Summary:            strptr("new summary"),
	})
	require.NoError(t, err)
	assert.Equal(t, len("much longer text"), res.Charcount)
}

func TestUpdateBillNotFound(t *testing.T) {
	svc := NewLegislationService(newFakeFactory(newFakeStore()), &stubProvider{}, testAIConfig())

	_, err := svc.Update(context.Background(), &dto.UpdateBillRequest{
		CongressIdParam:    118,
		LegislativeIdParam: "missing",
	})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestGenerateMetaFillsNameAndSummary(t *testing.T) {
	store := newFakeStore()
	store.bills[1] = &entity.LegislativeBill{
		Id: 1, LegislativeId: "hr-1", CongressId: 118, Text: "bill body",
	}
	provider := &stubProvider{responses: map[string]string{
		prompts.BillName("bill body"):    "Short Title",
		prompts.BillSummary("bill body"): "What it does.",
	}}

	svc := NewLegislationService(newFakeFactory(store), provider, testAIConfig())
	res, err := svc.GenerateMeta(context.Background(), 118, "hr-1")
	require.NoError(t, err)

	assert.Equal(t, "Short Title", res.BillName)
	assert.Equal(t, "What it does.", res.Summary)
	assert.Equal(t, "Short Title", store.bills[1].BillName)
}

func TestGenerateMetaRequiresText(t *testing.T) {
	store := newFakeStore()
	store.bills[1] = &entity.LegislativeBill{Id: 1, LegislativeId: "hr-1", CongressId: 118}

	svc := NewLegislationService(newFakeFactory(store), &stubProvider{}, testAIConfig())
	_, err := svc.GenerateMeta(context.Background(), 118, "hr-1")

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}

func TestSummarizeFetchesDocumentAndCreatesBill(t *testing.T) {
	doc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fetched bill text"))
	}))
	defer doc.Close()

	store := newFakeStore()
	provider := &stubProvider{responses: map[string]string{
		prompts.BillName("fetched bill text"):    "Fetched Act",
		prompts.BillSummary("fetched bill text"): "Summary of it.",
	}}

	svc := NewLegislationService(newFakeFactory(store), provider, testAIConfig())
	res, err := svc.Summarize(context.Background(), &dto.SummarizeBillRequest{
		LegislativeId: "s-42",
		CongressId:    118,
		Link:          doc.URL,
	})
	require.NoError(t, err)

	assert.Equal(t, "Fetched Act", res.BillName)
	assert.Equal(t, "Summary of it.", res.Summary)
	assert.Equal(t, "fetched bill text", res.Text)
	assert.Equal(t, len("fetched bill text"), res.Charcount)
	assert.Equal(t, doc.URL, res.Link)
	require.Len(t, store.bills, 1)
}

func TestSummarizeFailsOnBadStatus(t *testing.T) {
	doc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer doc.Close()

	svc := NewLegislationService(newFakeFactory(newFakeStore()), &stubProvider{}, testAIConfig())
	_, err := svc.Summarize(context.Background(), &dto.SummarizeBillRequest{
		LegislativeId: "s-42",
		CongressId:    118,
		Link:          doc.URL,
	})
	assert.Error(t, err)
}
