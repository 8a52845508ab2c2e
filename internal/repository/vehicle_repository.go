package repository

import "concessionaria-server/internal/model"

// VehicleStore 以"车辆 + 有序媒体"聚合为单位读写持久层
type VehicleStore interface {
	ListWithMedia() ([]model.Vehicle, error)
	FindByID(id string) (*model.Vehicle, error)

	// CreateWithMedia 在同一事务内插入车辆与媒体
	// 媒体顺序以列表位置为准，忽略调用方传入的 Order 值
	CreateWithMedia(vehicle *model.Vehicle, media []model.Media) error

	// UpdateWithMedia 部分更新车辆字段
	// replaceMedia 为 true 时（包括空列表）整体替换该车辆的媒体行
	UpdateWithMedia(id string, updates map[string]interface{}, media []model.Media, replaceMedia bool) error

	// Delete 在同一事务内删除车辆及其媒体行
	Delete(id string) error

	CountByStatus() (map[string]int64, error)
	CountAll() (int64, error)
}
