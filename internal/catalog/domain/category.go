// Package domain 包含商品目录的领域模型
package domain

// Category 商品分类
// slug 为全局唯一的 URL 标识，创建后不可变更
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug        string `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Image       string `gorm:"column:image;type:varchar(512)" json:"image,omitempty"`
}

func (Category) TableName() string { return "categories" }
