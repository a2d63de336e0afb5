package entities

// Counter holds one daily sequence; ID is "{sequence}_{YYYY-MM-DD}".
type Counter struct {
	ID            string `gorm:"type:varchar(64);primary_key" json:"id"`
	SequenceValue int64  `gorm:"not null;default:0" json:"sequence_value"`
}
