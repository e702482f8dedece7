package service

import (
	"context"
	"testing"

	"term-catalog-be/internal/dto"
	"term-catalog-be/internal/entity"
	"term-catalog-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddKeywordRejectsDuplicate(t *testing.T) {
	store := newFakeStore()
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "senate", Priority: "high"}

	svc := NewKeywordService(newFakeFactory(store))
	_, err := svc.Add(context.Background(), &dto.AddKeywordRequest{
		Keyword:  "senate",
		Priority: "low",
	})

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
	assert.Len(t, store.keywords, 1)
}

func TestSyncTagsBodyAndFaqSeparately(t *testing.T) {
	store := newFakeStore()
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "senate", Priority: "high"}
	store.keywords[2] = &entity.Keyword{Id: 2, Keyword: "cloture", Priority: "medium"}
	store.terms[1] = &entity.Term{
		Id:       1,
		Name:     "Filibuster",
		Response: "A tactic used in the Senate.",
		FaqQ1:    "What ends a filibuster?",
		FaqA1:    "A cloture vote.",
	}

	svc := NewKeywordService(newFakeFactory(store))
	require.NoError(t, svc.Sync(context.Background()))

	term := store.terms[1]
	assert.Equal(t, "senate", term.HighKeywords)
	assert.Equal(t, "", term.MediumKeywords)
	assert.Equal(t, "cloture", term.FaqMediumKeywords)
	assert.Equal(t, "", term.FaqHighKeywords)
}

func TestSyncExcludesTermsOwnName(t *testing.T) {
	store := newFakeStore()
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "Filibuster", Priority: "high"}
	store.terms[1] = &entity.Term{
		Id:       1,
		Name:     "Filibuster",
		Response: "The filibuster delays a vote.",
	}
	store.terms[2] = &entity.Term{
		Id:       2,
		Name:     "Cloture",
		Response: "Cloture ends a filibuster.",
	}

	svc := NewKeywordService(newFakeFactory(store))
	require.NoError(t, svc.Sync(context.Background()))

	// A term never tags itself; other terms still pick up its name.
	assert.Equal(t, "", store.terms[1].HighKeywords)
	assert.Equal(t, "Filibuster", store.terms[2].HighKeywords)
}

func TestSyncIsAdditive(t *testing.T) {
	store := newFakeStore()
	store.keywords[1] = &entity.Keyword{Id: 1, Keyword: "senate", Priority: "high"}
	store.terms[1] = &entity.Term{
		Id:           1,
		Name:         "Quorum",
		Response:     "Nothing matching here.",
		HighKeywords: "stale, tags",
		LowKeywords:  "older",
	}

	svc := NewKeywordService(newFakeFactory(store))
	require.NoError(t, svc.Sync(context.Background()))

	// No matches for a tier leaves the stored value untouched.
	assert.Equal(t, "stale, tags", store.terms[1].HighKeywords)
	assert.Equal(t, "older", store.terms[1].LowKeywords)
}

func TestClearEmptiesBodyTiersOnly(t *testing.T) {
	store := newFakeStore()
	store.terms[1] = &entity.Term{
		Id:              1,
		Name:            "Quorum",
		HighKeywords:    "a",
		MediumKeywords:  "b",
		LowKeywords:     "c",
		FaqHighKeywords: "faq-tag",
	}

	svc := NewKeywordService(newFakeFactory(store))
	require.NoError(t, svc.Clear(context.Background()))

	term := store.terms[1]
	assert.Equal(t, "", term.HighKeywords)
	assert.Equal(t, "", term.MediumKeywords)
	assert.Equal(t, "", term.LowKeywords)
	assert.Equal(t, "faq-tag", term.FaqHighKeywords)
}
