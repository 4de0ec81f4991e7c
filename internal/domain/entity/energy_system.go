// Package entity 定义领域实体
package entity

import "time"

// EnergySystem 能量体系设定（力量体系/魔法体系）
type EnergySystem struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID     string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;index"`
	Name        string    `json:"name" gorm:"type:varchar(128);not null"`
	EnergyType  string    `json:"energy_type" gorm:"type:varchar(64)"`
	Origin      string    `json:"origin" gorm:"type:text"`
	Rules       string    `json:"rules" gorm:"type:text"`
	Levels      string    `json:"levels" gorm:"type:text"`
	Acquisition string    `json:"acquisition" gorm:"type:text"`
	Limitations string    `json:"limitations" gorm:"type:text"`
	SideEffects string    `json:"side_effects" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (EnergySystem) TableName() string {
	return "energy_systems"
}
