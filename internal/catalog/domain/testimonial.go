package domain

// Testimonial 用户评价，启动时写入的只读数据
type Testimonial struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Avatar    string `gorm:"column:avatar;type:varchar(512)" json:"avatar,omitempty"`
	Rating    int    `gorm:"column:rating;not null" json:"rating"`
	Text      string `gorm:"column:text;type:text;not null" json:"text"`
	BikeModel string `gorm:"column:bike_model;type:varchar(255)" json:"bike_model,omitempty"`
}

func (Testimonial) TableName() string { return "testimonials" }
