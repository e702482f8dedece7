package model

// Term ids are assigned by the application's sequence allocator (and by
// the remote store on import), never by the database.
type Term struct {
	Id                int       `gorm:"primaryKey;autoIncrement:false"`
	Name              string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FaqTitle          string    `gorm:"type:text"`
	FaqQ1             string    `gorm:"type:text"`
	FaqA1             string    `gorm:"type:text"`
	FaqQ2             string    `gorm:"type:text"`
	FaqA2             string    `gorm:"type:text"`
	FaqQ3             string    `gorm:"type:text"`
	FaqA3             string    `gorm:"type:text"`
	FaqQ4             string    `gorm:"type:text"`
	FaqA4             string    `gorm:"type:text"`
	FaqQ5             string    `gorm:"type:text"`
	FaqA5             string    `gorm:"type:text"`
	HighKeywords      string    `gorm:"type:text"`
	MediumKeywords    string    `gorm:"type:text"`
	LowKeywords       string    `gorm:"type:text"`
	FaqHighKeywords   string    `gorm:"type:text"`
	FaqMediumKeywords string    `gorm:"type:text"`
	FaqLowKeywords    string    `gorm:"type:text"`
	Prompt            string    `gorm:"type:text"`
	Response          string    `gorm:"type:text"`
	Notes             string    `gorm:"type:text"`
	Keywords          []Keyword `gorm:"foreignKey:TermId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Audit             *Audit    `gorm:"foreignKey:Id;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Term) TableName() string {
	return "terms"
}
