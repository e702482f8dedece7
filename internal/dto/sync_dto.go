package dto

type SyncSummary struct {
	Exported int `json:"exported,omitempty"`
	Imported int `json:"imported,omitempty"`
	Deleted  int `json:"deleted,omitempty"`
}

type RemoteRecordResponse struct {
	Id     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}
