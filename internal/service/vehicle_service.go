package service

import (
	"errors"
	"log"
	"strings"

	"concessionaria-server/internal/common"
	"concessionaria-server/internal/consts"
	"concessionaria-server/internal/model"

	"gorm.io/gorm"
)

// MediaInput 提交的媒体描述，顺序以数组位置为准
type MediaInput struct {
	URL  string `json:"url" binding:"required"`
	Type string `json:"type"`
}

// VehicleCreateInput 创建车辆的完整字段
type VehicleCreateInput struct {
	Title       string       `json:"title"`
	Brand       string       `json:"brand"`
	Model       string       `json:"model"`
	Year        int          `json:"year"`
	Color       string       `json:"color"`
	Km          int          `json:"km"`
	Price       float64      `json:"price"`
	Fuel        string       `json:"fuel"`
	Gearbox     string       `json:"gearbox"`
	Status      string       `json:"status"`
	Description string       `json:"description"`
	Media       []MediaInput `json:"media"`
}

// VehicleUpdateInput 部分更新：指针为 nil 的字段保持不变
// Media 为 nil 表示完全未提供，保留现有媒体；非 nil（含空数组）整体替换
type VehicleUpdateInput struct {
	ID          string        `json:"id"`
	Title       *string       `json:"title"`
	Brand       *string       `json:"brand"`
	Model       *string       `json:"model"`
	Year        *int          `json:"year"`
	Color       *string       `json:"color"`
	Km          *int          `json:"km"`
	Price       *float64      `json:"price"`
	Fuel        *string       `json:"fuel"`
	Gearbox     *string       `json:"gearbox"`
	Status      *string       `json:"status"`
	Description *string       `json:"description"`
	Media       *[]MediaInput `json:"media"`
}

// ListVehicles 返回全部车辆及其有序媒体，按创建时间倒序
func (s *Service) ListVehicles() ([]model.Vehicle, error) {
	if cached, ok := s.cachedVehicleList(); ok {
		return cached, nil
	}

	vehicles, err := s.repos.Vehicle.ListWithMedia()
	if err != nil {
		log.Printf("List vehicles error: %v\n", err)
		return nil, common.NewInternalError("获取车辆列表失败")
	}

	s.storeVehicleListCache(vehicles)
	return vehicles, nil
}

// GetVehicle 按 ID 获取单辆车
func (s *Service) GetVehicle(id string) (*model.Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.NewValidationError("缺少车辆 ID")
	}

	vehicle, err := s.repos.Vehicle.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("车辆不存在")
		}
		log.Printf("Get vehicle error: %v\n", err)
		return nil, common.NewInternalError("获取车辆信息失败")
	}
	return vehicle, nil
}

// CreateVehicle 创建车辆聚合，车辆行与媒体行在同一事务内提交
func (s *Service) CreateVehicle(input VehicleCreateInput) (*model.Vehicle, error) {
	if err := validateVehicleFields(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = consts.StatusDraft
	}

	vehicle := model.Vehicle{
		Title:       input.Title,
		Brand:       input.Brand,
		Model:       input.Model,
		Year:        input.Year,
		Color:       input.Color,
		Km:          input.Km,
		Price:       input.Price,
		Fuel:        input.Fuel,
		Gearbox:     input.Gearbox,
		Status:      status,
		Description: input.Description,
	}

	media, err := mediaRowsFromInput(input.Media)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Vehicle.CreateWithMedia(&vehicle, media); err != nil {
		log.Printf("Create vehicle error: %v\n", err)
		return nil, common.NewValidationError(err.Error())
	}

	s.invalidateVehicleListCache()

	// 重新拉取，返回带有序媒体的完整聚合
	return s.GetVehicle(vehicle.ID)
}

// UpdateVehicle 部分更新车辆字段；提供 media 时整体替换媒体
func (s *Service) UpdateVehicle(input VehicleUpdateInput) (*model.Vehicle, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, common.NewValidationError("缺少车辆 ID")
	}

	updates, err := vehicleUpdates(input)
	if err != nil {
		return nil, err
	}

	var media []model.Media
	replaceMedia := input.Media != nil
	if replaceMedia {
		media, err = mediaRowsFromInput(*input.Media)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repos.Vehicle.UpdateWithMedia(input.ID, updates, media, replaceMedia); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("车辆不存在")
		}
		log.Printf("Update vehicle error: %v\n", err)
		return nil, common.NewValidationError(err.Error())
	}

	s.invalidateVehicleListCache()

	return s.GetVehicle(input.ID)
}

// DeleteVehicle 删除车辆及其媒体行
func (s *Service) DeleteVehicle(id string) error {
	if strings.TrimSpace(id) == "" {
		return common.NewValidationError("缺少车辆 ID")
	}

	if err := s.repos.Vehicle.Delete(id); err != nil {
		log.Printf("Delete vehicle error: %v\n", err)
		return common.NewValidationError(err.Error())
	}

	s.invalidateVehicleListCache()
	return nil
}

// VehicleStats 后台看板统计
type VehicleStats struct {
	Total  int64 `json:"total"`
	Draft  int64 `json:"draft"`
	Listed int64 `json:"listed"`
	Sold   int64 `json:"sold"`
}

func (s *Service) GetVehicleStats() (*VehicleStats, error) {
	counts, err := s.repos.Vehicle.CountByStatus()
	if err != nil {
		log.Printf("Count vehicles error: %v\n", err)
		return nil, common.NewInternalError("获取统计数据失败")
	}

	stats := VehicleStats{
		Draft:  counts[consts.StatusDraft],
		Listed: counts[consts.StatusListed],
		Sold:   counts[consts.StatusSold],
	}
	for _, c := range counts {
		stats.Total += c
	}
	return &stats, nil
}

func validateVehicleFields(input VehicleCreateInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return common.NewValidationError("标题不能为空")
	}
	if strings.TrimSpace(input.Brand) == "" {
		return common.NewValidationError("品牌不能为空")
	}
	if strings.TrimSpace(input.Model) == "" {
		return common.NewValidationError("型号不能为空")
	}
	if input.Year < 0 {
		return common.NewValidationError("年份不能为负数")
	}
	if input.Km < 0 {
		return common.NewValidationError("里程数不能为负数")
	}
	if input.Price < 0 {
		return common.NewValidationError("价格不能为负数")
	}
	if input.Fuel != "" && !containsString(consts.FuelTypes, input.Fuel) {
		return common.NewValidationError("不支持的燃料类型: " + input.Fuel)
	}
	if input.Gearbox != "" && !containsString(consts.GearboxTypes, input.Gearbox) {
		return common.NewValidationError("不支持的变速箱类型: " + input.Gearbox)
	}
	if input.Status != "" && !containsString(consts.VehicleStatuses, input.Status) {
		return common.NewValidationError("不支持的车辆状态: " + input.Status)
	}
	return nil
}

func vehicleUpdates(input VehicleUpdateInput) (map[string]interface{}, error) {
	updates := make(map[string]interface{})

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, common.NewValidationError("标题不能为空")
		}
		updates["title"] = *input.Title
	}
	if input.Brand != nil {
		if strings.TrimSpace(*input.Brand) == "" {
			return nil, common.NewValidationError("品牌不能为空")
		}
		updates["brand"] = *input.Brand
	}
	if input.Model != nil {
		if strings.TrimSpace(*input.Model) == "" {
			return nil, common.NewValidationError("型号不能为空")
		}
		updates["model"] = *input.Model
	}
	if input.Year != nil {
		if *input.Year < 0 {
			return nil, common.NewValidationError("年份不能为负数")
		}
		updates["year"] = *input.Year
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if input.Km != nil {
		if *input.Km < 0 {
			return nil, common.NewValidationError("里程数不能为负数")
		}
		updates["km"] = *input.Km
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, common.NewValidationError("价格不能为负数")
		}
		updates["price"] = *input.Price
	}
	if input.Fuel != nil {
		if *input.Fuel != "" && !containsString(consts.FuelTypes, *input.Fuel) {
			return nil, common.NewValidationError("不支持的燃料类型: " + *input.Fuel)
		}
		updates["fuel"] = *input.Fuel
	}
	if input.Gearbox != nil {
		if *input.Gearbox != "" && !containsString(consts.GearboxTypes, *input.Gearbox) {
			return nil, common.NewValidationError("不支持的变速箱类型: " + *input.Gearbox)
		}
		updates["gearbox"] = *input.Gearbox
	}
	if input.Status != nil {
		if !containsString(consts.VehicleStatuses, *input.Status) {
			return nil, common.NewValidationError("不支持的车辆状态: " + *input.Status)
		}
		updates["status"] = *input.Status
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	return updates, nil
}

func mediaRowsFromInput(inputs []MediaInput) ([]model.Media, error) {
	rows := make([]model.Media, 0, len(inputs))
	for _, m := range inputs {
		if strings.TrimSpace(m.URL) == "" {
			return nil, common.NewValidationError("媒体 URL 不能为空")
		}
		kind := m.Type
		if kind == "" {
			kind = consts.MediaTypeImage
		}
		if kind != consts.MediaTypeImage && kind != consts.MediaTypeVideo {
			return nil, common.NewValidationError("不支持的媒体类型: " + m.Type)
		}
		rows = append(rows, model.Media{URL: m.URL, Type: kind})
	}
	return rows, nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
