package model

// LegislativeId alone carries the unique index; lookups use the pair
// (congress_id, legislative_id). Two congresses reusing a bill number
// would collide on create; known gap, kept as-is until the editorial
// team decides on the key.
type LegislativeBill struct {
	Id            int    `gorm:"primaryKey"`
	LegislativeId string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Summary       string `gorm:"type:text"`
	BillName      string `gorm:"type:varchar(255)"`
	CongressId    int    `gorm:"not null"`
	Text          string `gorm:"type:text"`
	Link          string `gorm:"type:text"`
	Charcount     int
}

func (LegislativeBill) TableName() string {
	return "legislative_bills"
}
