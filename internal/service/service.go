package service

import (
	"concessionaria-server/internal/repository"
	"concessionaria-server/internal/storage"
)

// Service 聚合业务逻辑，存储网关与仓库在构造时注入
type Service struct {
	repos *repository.Repositories
	store storage.Store
}

func New(repos *repository.Repositories, store storage.Store) *Service {
	return &Service{
		repos: repos,
		store: store,
	}
}
