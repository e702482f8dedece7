package dto

type AuditData struct {
	FAQ            bool `json:"FAQ"`
	Summary        bool `json:"Summary"`
	TechnicalStuff bool `json:"Technical_Stuff"`
}

type AuditResponse struct {
	Id        int       `json:"id"`
	AuditData AuditData `json:"auditData"`
	Notes     string    `json:"notes"`
}

type UpdateAuditRequest struct {
	Id        int
	AuditData UpdateAuditData `json:"auditData"`
	Notes     *string         `json:"notes"`
}

type CreateAuditRequest struct {
	Id        int             `json:"id" validate:"required"`
	AuditData UpdateAuditData `json:"auditData"`
	Notes     *string         `json:"notes"`
}
