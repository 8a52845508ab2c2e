package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	Vehicle VehicleStore
}

func NewVehicleRepository(db *gorm.DB) VehicleStore {
	return &VehicleRepository{db: db}
}

func NewRepositories(vehicle VehicleStore) *Repositories {
	return &Repositories{
		Vehicle: vehicle,
	}
}
