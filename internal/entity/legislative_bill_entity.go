package entity

// LegislativeBill is a summarized piece of legislation. Charcount is a
// maintained invariant: it must equal the character length of Text
// after any write that changes Text.
type LegislativeBill struct {
	Id            int
	LegislativeId string
	Summary       string
	BillName      string
	CongressId    int
	Text          string
	Link          string
	Charcount     int
}
