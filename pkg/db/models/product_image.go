package models

import "time"

// ProductImage pairs a database row with a file in the blob store. ImageURL
// is a store-relative path ("/images/products/<file>"), never an absolute
// filesystem location.
type ProductImage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"imageUrl"`
	ProductID uint      `gorm:"column:product_id;not null;index" json:"productId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
