// Package userstore defines the database schema for user records. The
// engine never interprets users; they round-trip through snapshot
// export/import as opaque payloads in insertion order.
package userstore

// UserRecordDTO represents the database structure for one user payload.
type UserRecordDTO struct {
	Seq     int64  `gorm:"primaryKey;autoIncrement"`
	Payload []byte `gorm:"type:json;not null"`
}

// TableName specifies the database table name for user records.
func (UserRecordDTO) TableName() string {
	return "user_records"
}
