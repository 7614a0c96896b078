package models

type SupportProgram struct {
	ID                     int    `gorm:"primaryKey;column:id"`
	Name                   string `gorm:"column:name;size:255"`
	Target                 string `gorm:"column:target;type:text"`
	ScaleOfSupport         string `gorm:"column:scale_of_support;type:text"`
	SupportContent         string `gorm:"column:support_content;type:text"`
	SupportCharacteristics string `gorm:"column:support_characteristics;type:text"`
	SupportInfo            string `gorm:"column:support_info;type:text"`
	SupportYear            int    `gorm:"column:support_year;index"`
	OriginURL              string `gorm:"column:origin_url;size:500"`
}

func (SupportProgram) TableName() string {
	return "tbl_support_program"
}
