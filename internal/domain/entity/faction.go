// Package entity 定义领域实体
package entity

import "time"

// Faction 势力设定
type Faction struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID      string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID    string    `json:"project_id" gorm:"type:uuid;index"`
	Name         string    `json:"name" gorm:"type:varchar(128);not null"`
	FactionType  string    `json:"faction_type" gorm:"type:varchar(64);not null"`
	Ideology     string    `json:"ideology" gorm:"type:text"`
	Structure    string    `json:"structure" gorm:"type:text"`
	Leader       string    `json:"leader" gorm:"type:varchar(128)"`
	Headquarters string    `json:"headquarters" gorm:"type:varchar(128)"`
	Influence    string    `json:"influence" gorm:"type:text"`
	Allies       string    `json:"allies" gorm:"type:text"`
	Enemies      string    `json:"enemies" gorm:"type:text"`
	History      string    `json:"history" gorm:"type:text"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Faction) TableName() string {
	return "factions"
}
