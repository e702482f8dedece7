package dto

type KeywordResponse struct {
	Id       int    `json:"id"`
	Keyword  string `json:"keyword"`
	Priority string `json:"priority"`
}

type AddKeywordRequest struct {
	Keyword  string `json:"keyword" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	TermId   int    `json:"term_id"`
}
