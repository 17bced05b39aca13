package domain

import "strings"

// Product 商品
// CategoryID 为弱引用，不声明外键约束，引用完整性由调用方保证
type Product struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug          string   `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description   string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Price         float64  `gorm:"column:price;not null" json:"price"`
	OriginalPrice *float64 `gorm:"column:original_price" json:"original_price,omitempty"`
	ImageURL      string   `gorm:"column:image_url;type:varchar(512);not null" json:"image_url"`
	CategoryID    uint     `gorm:"column:category_id;index;not null" json:"category_id"`
	InStock       bool     `gorm:"column:in_stock;default:true" json:"in_stock"`
	IsFeatured    bool     `gorm:"column:is_featured;default:false" json:"is_featured"`
	IsNew         bool     `gorm:"column:is_new;default:false" json:"is_new"`
	IsBestseller  bool     `gorm:"column:is_bestseller;default:false" json:"is_bestseller"`
	Rating        float64  `gorm:"column:rating;default:0" json:"rating"`
	ReviewCount   int      `gorm:"column:review_count;default:0" json:"review_count"`
}

func (Product) TableName() string { return "products" }

// ProductFilter 商品查询条件，所有已设置的条件取交集
type ProductFilter struct {
	// 精确匹配分类
	CategoryID *uint
	// 精确匹配推荐标记
	Featured *bool
	// 精确匹配库存标记
	InStock *bool
	// 对名称或描述做大小写不敏感的子串匹配
	Search string
}

// Matches 判断商品是否满足过滤条件（内存后端使用）
func (f ProductFilter) Matches(p *Product) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}
