// Package entity 定义领域实体
package entity

import "time"

// Location 地点设定
type Location struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID      string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID    string    `json:"project_id" gorm:"type:uuid;index"`
	Name         string    `json:"name" gorm:"type:varchar(128);not null"`
	LocationType string    `json:"location_type" gorm:"type:varchar(64);not null"`
	Climate      string    `json:"climate" gorm:"type:varchar(128)"`
	Terrain      string    `json:"terrain" gorm:"type:text"`
	Culture      string    `json:"culture" gorm:"type:text"`
	History      string    `json:"history" gorm:"type:text"`
	Significance string    `json:"significance" gorm:"type:text"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Location) TableName() string {
	return "locations"
}
