package dto

// Field names mirror the columns the editorial frontend and the remote
// store already use, camelCase and all.

type AuditBlock struct {
	FAQ            bool   `json:"FAQ"`
	Summary        bool   `json:"Summary"`
	TechnicalStuff bool   `json:"Technical_Stuff"`
	Notes          string `json:"notes"`
}

type TermResponse struct {
	Id                int         `json:"id"`
	Name              string      `json:"name"`
	FaqTitle          string      `json:"faqTitle"`
	FaqQ1             string      `json:"faqQ1"`
	FaqA1             string      `json:"faqA1"`
	FaqQ2             string      `json:"faqQ2"`
	FaqA2             string      `json:"faqA2"`
	FaqQ3             string      `json:"faqQ3"`
	FaqA3             string      `json:"faqA3"`
	FaqQ4             string      `json:"faqQ4"`
	FaqA4             string      `json:"faqA4"`
	FaqQ5             string      `json:"faqQ5"`
	FaqA5             string      `json:"faqA5"`
	HighKeywords      string      `json:"highKeywords"`
	MediumKeywords    string      `json:"mediumKeywords"`
	LowKeywords       string      `json:"lowKeywords"`
	FaqHighKeywords   string      `json:"faqHighKeywords"`
	FaqMediumKeywords string      `json:"faqMediumKeywords"`
	FaqLowKeywords    string      `json:"faqLowKeywords"`
	Prompt            string      `json:"prompt"`
	Response          string      `json:"response"`
	Notes             string      `json:"notes"`
	Priority          *string     `json:"priority,omitempty"`
	Audit             *AuditBlock `json:"audit"`
}

// UpdateTermRequest carries only the fields the editor actually sent;
// nil pointers leave the stored value untouched.
type UpdateTermRequest struct {
	Id                int
	Name              *string          `json:"name"`
	FaqTitle          *string          `json:"faqTitle"`
	FaqQ1             *string          `json:"faqQ1"`
	FaqA1             *string          `json:"faqA1"`
	FaqQ2             *string          `json:"faqQ2"`
	FaqA2             *string          `json:"faqA2"`
	FaqQ3             *string          `json:"faqQ3"`
	FaqA3             *string          `json:"faqA3"`
	FaqQ4             *string          `json:"faqQ4"`
	FaqA4             *string          `json:"faqA4"`
	FaqQ5             *string          `json:"faqQ5"`
	FaqA5             *string          `json:"faqA5"`
	HighKeywords      *string          `json:"highKeywords"`
	MediumKeywords    *string          `json:"mediumKeywords"`
	LowKeywords       *string          `json:"lowKeywords"`
	FaqHighKeywords   *string          `json:"faqHighKeywords"`
	FaqMediumKeywords *string          `json:"faqMediumKeywords"`
	FaqLowKeywords    *string          `json:"faqLowKeywords"`
	Prompt            *string          `json:"prompt"`
	Response          *string          `json:"response"`
	Notes             *string          `json:"notes"`
	Audit             *UpdateAuditData `json:"audit"`
}

type UpdateAuditData struct {
	FAQ            *bool   `json:"FAQ"`
	Summary        *bool   `json:"Summary"`
	TechnicalStuff *bool   `json:"Technical_Stuff"`
	Notes          *string `json:"notes"`
}

type DeleteSummary struct {
	Deleted int64 `json:"deleted"`
}
