// Package entity 定义领域实体
package entity

import "time"

// Region 地域设定
type Region struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID         string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID       string    `json:"project_id" gorm:"type:uuid;index"`
	Name            string    `json:"name" gorm:"type:varchar(128);not null"`
	RegionType      string    `json:"region_type" gorm:"type:varchar(64)"`
	Area            string    `json:"area" gorm:"type:varchar(128)"`
	Population      string    `json:"population" gorm:"type:varchar(128)"`
	Resources       string    `json:"resources" gorm:"type:text"`
	Governance      string    `json:"governance" gorm:"type:text"`
	NotableFeatures string    `json:"notable_features" gorm:"type:text"`
	Description     string    `json:"description" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Region) TableName() string {
	return "regions"
}
