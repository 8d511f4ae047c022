package outbox

import "time"

const (
	TopicLoanStatusChanged = "loan.status_changed"
	TopicContractCreated   = "loan.contract_created"
)

// Table: outbox_events. Written in the same tx as the state change it
// describes; PublishedAt stays NULL until the relay delivers it.
type Event struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventID     string     `gorm:"column:event_id;type:char(26);not null;uniqueIndex:ux_outbox_event_id"`
	Topic       string     `gorm:"column:topic;size:64;not null"`
	AggregateID string     `gorm:"column:aggregate_id;size:32;not null"`
	Payload     []byte     `gorm:"column:payload;type:blob;not null"`
	Attempts    int        `gorm:"column:attempts;not null;default:0"`
	LastError   string     `gorm:"column:last_error;type:text"`
	PublishedAt *time.Time `gorm:"column:published_at;index"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Event) TableName() string { return "outbox_events" }
