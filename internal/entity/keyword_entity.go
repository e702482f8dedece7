package entity

// Keyword is one row of the shared tagging dictionary. TermId records
// which term's creation introduced the keyword, not a usage link: every
// keyword is scanned against every term during sync.
type Keyword struct {
	Id       int
	Keyword  string
	Priority string
	TermId   int
}
