// Package entity 定义领域实体
package entity

import "time"

// Character 角色设定
type Character struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID       string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID     string    `json:"project_id" gorm:"type:uuid;index"`
	Name          string    `json:"name" gorm:"type:varchar(128);not null"`
	Gender        string    `json:"gender" gorm:"type:varchar(32)"`
	Age           string    `json:"age" gorm:"type:varchar(32)"`
	Race          string    `json:"race" gorm:"type:varchar(64)"`
	Identity      string    `json:"identity" gorm:"type:varchar(128)"`
	Personality   string    `json:"personality" gorm:"type:text"`
	Appearance    string    `json:"appearance" gorm:"type:text"`
	Background    string    `json:"background" gorm:"type:text"`
	Abilities     string    `json:"abilities" gorm:"type:text"`
	Goals         string    `json:"goals" gorm:"type:text"`
	Relationships string    `json:"relationships" gorm:"type:text"`
	Description   string    `json:"description" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Character) TableName() string {
	return "characters"
}
