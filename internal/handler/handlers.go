package handler

import (
	"concessionaria-server/internal/service"
)

// Handler 持有业务服务，按路由域拆分方法文件
type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}
