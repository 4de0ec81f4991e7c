// Package entity 定义领域实体
package entity

import "time"

// Item 物品设定
type Item struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorldID     string    `json:"world_id" gorm:"type:uuid;index"`
	ProjectID   string    `json:"project_id" gorm:"type:uuid;index"`
	Name        string    `json:"name" gorm:"type:varchar(128);not null"`
	ItemType    string    `json:"item_type" gorm:"type:varchar(64);not null"`
	Rarity      string    `json:"rarity" gorm:"type:varchar(32)"`
	Origin      string    `json:"origin" gorm:"type:text"`
	Powers      string    `json:"powers" gorm:"type:text"`
	Appearance  string    `json:"appearance" gorm:"type:text"`
	History     string    `json:"history" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}
