package model

type Keyword struct {
	Id       int    `gorm:"primaryKey"`
	Keyword  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Priority string `gorm:"type:varchar(50);not null"`
	TermId   int    `gorm:"not null;index"`
}

func (Keyword) TableName() string {
	return "keywords"
}
