package model

// "order" 是 SQL 保留字，列名使用 display_order，JSON 字段保持 order
type Media struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	VehicleID string  `json:"vehicle_id" gorm:"not null;size:36;index"`
	URL       string  `json:"url" gorm:"not null"`
	Type      string  `json:"type" gorm:"not null"` // image / video
	Order     int     `json:"order" gorm:"column:display_order;not null;default:0"`
	Vehicle   Vehicle `gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
