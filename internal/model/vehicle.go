package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Title       string  `json:"title" gorm:"not null"`
	Brand       string  `json:"brand" gorm:"not null;index"`
	Model       string  `json:"model" gorm:"not null"`
	Year        int     `json:"year" gorm:"not null"`
	Color       string  `json:"color"`
	Km          int     `json:"km" gorm:"not null;default:0"`
	Price       float64 `json:"price" gorm:"not null;default:0"`
	Fuel        string  `json:"fuel" gorm:"index"`
	Gearbox     string  `json:"gearbox" gorm:"index"`
	Status      string  `json:"status" gorm:"not null;default:rascunho;index"`
	Description string  `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Media       []Media `json:"media"`
}

// BeforeCreate 自动生成 UUID 主键
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
