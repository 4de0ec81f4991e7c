// Package entity 定义领域实体
package entity

import "time"

// World 世界观顶层容器
type World struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;index"`
	Name        string    `json:"name" gorm:"type:varchar(128);not null"`
	WorldType   string    `json:"world_type" gorm:"type:varchar(64)"`
	CoreConcept string    `json:"core_concept" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	Origin      string    `json:"origin" gorm:"type:text"`
	Essence     string    `json:"essence" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (World) TableName() string {
	return "worlds"
}

// WorldSetting 世界观规则设定，按项目维度存储
type WorldSetting struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID        string    `json:"project_id" gorm:"type:uuid;uniqueIndex"`
	SpatialHierarchy string    `json:"spatial_hierarchy" gorm:"type:text"`
	TimeSystem       string    `json:"time_system" gorm:"type:text"`
	PhysicalLaws     string    `json:"physical_laws" gorm:"type:text"`
	SpecialRules     string    `json:"special_rules" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (WorldSetting) TableName() string {
	return "world_settings"
}
