package model

// Audit shares its primary key with the term it reviews.
type Audit struct {
	Id             int    `gorm:"primaryKey;autoIncrement:false"`
	FAQ            bool   `gorm:"default:false"`
	Summary        bool   `gorm:"default:false"`
	TechnicalStuff bool   `gorm:"default:false"`
	Notes          string `gorm:"type:text"`
}

func (Audit) TableName() string {
	return "audits"
}
