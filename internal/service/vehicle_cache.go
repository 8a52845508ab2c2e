package service

import (
	"context"
	"encoding/json"
	"time"

	"concessionaria-server/internal/model"
)

// 公开目录列表的 Redis 缓存，任意写操作后失效
const vehicleListCacheTTL = 1 * time.Minute

func vehicleListCacheKey() string {
	return RedisKey("catalog", "vehicles")
}

func (s *Service) cachedVehicleList() ([]model.Vehicle, bool) {
	client := GetRedisClient()
	if client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	raw, err := client.Get(ctx, vehicleListCacheKey()).Bytes()
	if err != nil {
		return nil, false
	}

	var vehicles []model.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, false
	}
	return vehicles, true
}

func (s *Service) storeVehicleListCache(vehicles []model.Vehicle) {
	client := GetRedisClient()
	if client == nil {
		return
	}

	raw, err := json.Marshal(vehicles)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Set(ctx, vehicleListCacheKey(), raw, vehicleListCacheTTL).Err()
}

func (s *Service) invalidateVehicleListCache() {
	client := GetRedisClient()
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Del(ctx, vehicleListCacheKey()).Err()
}
