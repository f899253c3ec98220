package specification

import "gorm.io/gorm"

type ByLegalArea struct {
	LegalArea string
}

func (s ByLegalArea) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("legal_area = ?", s.LegalArea)
}

type ByTopic struct {
	Topic string
}

func (s ByTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic = ?", s.Topic)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByJurisdictionOrNational matches rows for the given jurisdiction plus
// national rows (empty jurisdiction).
type ByJurisdictionOrNational struct {
	Jurisdiction string
}

func (s ByJurisdictionOrNational) Apply(db *gorm.DB) *gorm.DB {
	if s.Jurisdiction == "" {
		return db.Where("jurisdiction = ''")
	}
	return db.Where("jurisdiction = ? OR jurisdiction = ''", s.Jurisdiction)
}
