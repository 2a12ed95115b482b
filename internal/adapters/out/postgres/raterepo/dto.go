// Package raterepo defines the database schema for rate cards. Rates are
// written only by snapshot import and read only by the rate lookup query,
// so the package carries schema and mapping but no repository.
package raterepo

// RateDTO represents the database structure for one rate band.
// The payload column keeps the imported record verbatim; the remaining
// columns are extracted from it to serve the lookup query.
type RateDTO struct {
	Seq         int64   `gorm:"primaryKey;autoIncrement"`
	PartnerCode string  `gorm:"type:text;not null;index:idx_rates_lookup,priority:1"`
	State       string  `gorm:"type:text;not null;index:idx_rates_lookup,priority:2"`
	WeightFrom  float64 `gorm:"not null"`
	WeightTo    float64 `gorm:"not null"`
	Charge      float64 `gorm:"not null"`
	Payload     []byte  `gorm:"type:json;not null"`
}

// TableName specifies the database table name for rates.
func (RateDTO) TableName() string {
	return "rates"
}
