// Package entity 定义领域实体
package entity

import "time"

// Dimension 维度/位面设定
type Dimension struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID          string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID        string    `json:"project_id" gorm:"type:uuid;index"`
	Name             string    `json:"name" gorm:"type:varchar(128);not null"`
	DimensionType    string    `json:"dimension_type" gorm:"type:varchar(64)"`
	AccessMethod     string    `json:"access_method" gorm:"type:text"`
	PhysicalLaws     string    `json:"physical_laws" gorm:"type:text"`
	Inhabitants      string    `json:"inhabitants" gorm:"type:text"`
	Dangers          string    `json:"dangers" gorm:"type:text"`
	ConnectionToMain string    `json:"connection_to_main" gorm:"type:text"`
	Description      string    `json:"description" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Dimension) TableName() string {
	return "dimensions"
}
