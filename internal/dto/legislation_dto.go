package dto

type LegislativeBillResponse struct {
	Id            int    `json:"id"`
	LegislativeId string `json:"legislative_id"`
	Summary       string `json:"summary"`
	BillName      string `json:"bill_name"`
	CongressId    int    `json:"congress_id"`
	Text          string `json:"text"`
	Link          string `json:"link"`
	Charcount     int    `json:"charcount"`
}

type CreateBillRequest struct {
	LegislativeId string `json:"legislative_id" validate:"required"`
	CongressId    int    `json:"congress_id" validate:"required"`
	BillName      string `json:"bill_name"`
	Summary       string `json:"summary"`
	Text          string `json:"text"`
	Link          string `json:"link"`
}

type UpdateBillRequest struct {
	CongressIdParam    int
	LegislativeIdParam string

	LegislativeId *string `json:"legislative_id"`
	Summary       *string `json:"summary"`
	BillName      *string `json:"bill_name"`
	CongressId    *int    `json:"congress_id"`
	Text          *string `json:"text"`
	Link          *string `json:"link"`
}

// SummarizeBillRequest feeds fetch-and-summarize: the bill text is
// pulled from the document link, then titled and summarized.
type SummarizeBillRequest struct {
	LegislativeId string `json:"legislative_id" validate:"required"`
	CongressId    int    `json:"congress_id" validate:"required"`
	Link          string `json:"link" validate:"required,url"`
}
