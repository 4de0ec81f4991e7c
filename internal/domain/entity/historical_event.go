// Package entity 定义领域实体
package entity

import "time"

// HistoricalEvent 历史事件设定
type HistoricalEvent struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID      string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID    string    `json:"project_id" gorm:"type:uuid;index"`
	Name         string    `json:"name" gorm:"type:varchar(128);not null"`
	EventType    string    `json:"event_type" gorm:"type:varchar(64)"`
	Era          string    `json:"era" gorm:"type:varchar(128)"`
	Participants string    `json:"participants" gorm:"type:text"`
	Cause        string    `json:"cause" gorm:"type:text"`
	Process      string    `json:"process" gorm:"type:text"`
	Outcome      string    `json:"outcome" gorm:"type:text"`
	Impact       string    `json:"impact" gorm:"type:text"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (HistoricalEvent) TableName() string {
	return "historical_events"
}
