package service

import (
	"sort"
	"strings"

	"concessionaria-server/internal/consts"
	"concessionaria-server/internal/model"
)

// FilterCriteria 目录页的五个独立筛选条件，全部取交集
type FilterCriteria struct {
	Query      string `form:"q"`
	Brand      string `form:"brand"`
	Fuel       string `form:"fuel"`
	Gearbox    string `form:"gearbox"`
	PriceRange string `form:"price"`
}

// FilterOptions 目录页筛选下拉框的候选值，由当前列表推导
type FilterOptions struct {
	Brands    []string `json:"brands"`
	Fuels     []string `json:"fuels"`
	Gearboxes []string `json:"gearboxes"`
}

// FilterVehicles 对内存中的车辆列表求值筛选谓词
func FilterVehicles(vehicles []model.Vehicle, criteria FilterCriteria) []model.Vehicle {
	result := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matchesCriteria(v, criteria) {
			result = append(result, v)
		}
	}
	return result
}

func matchesCriteria(v model.Vehicle, c FilterCriteria) bool {
	if !matchesQuery(v, c.Query) {
		return false
	}
	if c.Brand != "" && c.Brand != consts.FilterAll && v.Brand != c.Brand {
		return false
	}
	if c.Fuel != "" && c.Fuel != consts.FilterAll && v.Fuel != c.Fuel {
		return false
	}
	if c.Gearbox != "" && c.Gearbox != consts.FilterAll && v.Gearbox != c.Gearbox {
		return false
	}
	return matchesPriceRange(v.Price, c.PriceRange)
}

// 空查询匹配所有车辆，否则对标题/品牌/型号/描述做大小写不敏感子串匹配
func matchesQuery(v model.Vehicle, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Brand), q) ||
		strings.Contains(strings.ToLower(v.Model), q) ||
		strings.Contains(strings.ToLower(v.Description), q)
}

func matchesPriceRange(price float64, priceRange string) bool {
	switch priceRange {
	case "", consts.PriceRangeAll:
		return true
	case consts.PriceRangeUnder50:
		return price < 50000
	case consts.PriceRange50To100:
		return price >= 50000 && price < 100000
	case consts.PriceRange100To150:
		return price >= 100000 && price < 150000
	case consts.PriceRangeOver150:
		return price >= 150000
	default:
		return true
	}
}

// BuildFilterOptions 推导去重且按字母排序的筛选候选值
func BuildFilterOptions(vehicles []model.Vehicle) FilterOptions {
	brands := make(map[string]struct{})
	fuels := make(map[string]struct{})
	gearboxes := make(map[string]struct{})

	for _, v := range vehicles {
		if v.Brand != "" {
			brands[v.Brand] = struct{}{}
		}
		if v.Fuel != "" {
			fuels[v.Fuel] = struct{}{}
		}
		if v.Gearbox != "" {
			gearboxes[v.Gearbox] = struct{}{}
		}
	}

	return FilterOptions{
		Brands:    sortedKeys(brands),
		Fuels:     sortedKeys(fuels),
		Gearboxes: sortedKeys(gearboxes),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
