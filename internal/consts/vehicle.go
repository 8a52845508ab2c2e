package consts

// 车辆枚举值与前端表单保持一致，展示值直接入库
var (
	FuelTypes    = []string{"Gasolina", "Diesel", "Híbrido", "Elétrico"}
	GearboxTypes = []string{"Manual", "Automático", "CVT"}
)

// 车辆状态
const (
	StatusDraft  = "rascunho"
	StatusListed = "anunciado"
	StatusSold   = "vendido"
)

var VehicleStatuses = []string{StatusDraft, StatusListed, StatusSold}

// 媒体类型
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// 价格区间筛选值（单位：雷亚尔）
const (
	PriceRangeAll      = "all"
	PriceRangeUnder50  = "under-50"
	PriceRange50To100  = "50-100"
	PriceRange100To150 = "100-150"
	PriceRangeOver150  = "over-150"
)

// FilterAll 品牌/燃料/变速箱筛选的"全部"哨兵值
const FilterAll = "all"
