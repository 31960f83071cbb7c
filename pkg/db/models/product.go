package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a storefront listing. CategoryID and BrandID are checked
// against existing rows at create/update time only; deleting a parent later
// leaves the reference dangling.
type Product struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description *string         `gorm:"column:description" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Platforms   []string        `gorm:"column:platforms;type:text;serializer:json" json:"platforms,omitempty"`
	ReleaseYear *int            `gorm:"column:release_year" json:"releaseYear,omitempty"`
	CategoryID  uint            `gorm:"column:category_id;not null" json:"categoryId"`
	BrandID     uint            `gorm:"column:brand_id;not null" json:"brandId"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
