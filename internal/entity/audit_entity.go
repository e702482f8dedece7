package entity

// Audit is the editorial review checklist for exactly one term. Its Id
// is the term's id; it never exists on its own.
type Audit struct {
	Id             int
	FAQ            bool
	Summary        bool
	TechnicalStuff bool
	Notes          string
}
