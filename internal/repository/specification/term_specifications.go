package specification

import "gorm.io/gorm"

// ByName filters terms by their unique name
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByTermID filters keywords by their owning term
type ByTermID struct {
	TermID int
}

func (s ByTermID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("term_id = ?", s.TermID)
}

// ByKeyword filters dictionary rows by keyword text
type ByKeyword struct {
	Keyword string
}

func (s ByKeyword) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("keyword = ?", s.Keyword)
}

// ByCongressAndLegislativeID is the natural lookup key for bills
type ByCongressAndLegislativeID struct {
	CongressID    int
	LegislativeID string
}

func (s ByCongressAndLegislativeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("congress_id = ? AND legislative_id = ?", s.CongressID, s.LegislativeID)
}

// ByLegislativeID filters bills by the uniquely indexed column
type ByLegislativeID struct {
	LegislativeID string
}

func (s ByLegislativeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("legislative_id = ?", s.LegislativeID)
}
