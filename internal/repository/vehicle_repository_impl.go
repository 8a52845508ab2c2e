package repository

import (
	"concessionaria-server/internal/model"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

// 媒体统一按保存时写入的顺序值升序返回，order 相同按 id 稳定排序
func preloadOrderedMedia(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, id ASC")
}

func (r *VehicleRepository) ListWithMedia() ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.Preload("Media", preloadOrderedMedia).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindByID(id string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.Preload("Media", preloadOrderedMedia).
		First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) CreateWithMedia(vehicle *model.Vehicle, media []model.Media) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		if len(media) == 0 {
			return nil
		}
		rows := assignMediaPositions(vehicle.ID, media)
		return tx.Create(&rows).Error
	})
}

func (r *VehicleRepository) UpdateWithMedia(id string, updates map[string]interface{}, media []model.Media, replaceMedia bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&vehicle).Updates(updates).Error; err != nil {
				return err
			}
		}

		if !replaceMedia {
			return nil
		}

		// 整体替换：先删后插，顺序按列表位置重新编号
		if err := tx.Where("vehicle_id = ?", id).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		if len(media) == 0 {
			return nil
		}
		rows := assignMediaPositions(id, media)
		return tx.Create(&rows).Error
	})
}

func (r *VehicleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 显式删除媒体行，不依赖数据库级联配置
		if err := tx.Where("vehicle_id = ?", id).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Vehicle{}, "id = ?", id).Error
	})
}

func (r *VehicleRepository) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := r.db.Model(&model.Vehicle{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *VehicleRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Vehicle{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// assignMediaPositions 按提交顺序重新编号媒体，位置即权威顺序
func assignMediaPositions(vehicleID string, media []model.Media) []model.Media {
	rows := make([]model.Media, 0, len(media))
	for i, m := range media {
		rows = append(rows, model.Media{
			VehicleID: vehicleID,
			URL:       m.URL,
			Type:      m.Type,
			Order:     i,
		})
	}
	return rows
}
