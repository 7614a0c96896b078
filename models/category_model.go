package models

type Category struct {
	ID   int    `json:"id" gorm:"primaryKey;column:id"`
	Name string `json:"name" gorm:"column:name;size:50;uniqueIndex"`
}

func (Category) TableName() string {
	return "tbl_category"
}

type BusinessCategory struct {
	BusinessID int `gorm:"primaryKey;column:business_id;autoIncrement:false"`
	CategoryID int `gorm:"primaryKey;column:category_id;autoIncrement:false"`
}

func (BusinessCategory) TableName() string {
	return "tbl_business_category"
}
