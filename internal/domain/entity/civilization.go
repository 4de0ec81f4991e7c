// Package entity 定义领域实体
package entity

import "time"

// Civilization 文明设定
type Civilization struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID          string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID        string    `json:"project_id" gorm:"type:uuid;index"`
	Name             string    `json:"name" gorm:"type:varchar(128);not null"`
	CivilizationType string    `json:"civilization_type" gorm:"type:varchar(64)"`
	Era              string    `json:"era" gorm:"type:varchar(128)"`
	TechnologyLevel  string    `json:"technology_level" gorm:"type:text"`
	SocialStructure  string    `json:"social_structure" gorm:"type:text"`
	Culture          string    `json:"culture" gorm:"type:text"`
	Achievements     string    `json:"achievements" gorm:"type:text"`
	DeclineReason    string    `json:"decline_reason" gorm:"type:text"`
	Description      string    `json:"description" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Civilization) TableName() string {
	return "civilizations"
}
