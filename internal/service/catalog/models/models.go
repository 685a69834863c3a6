package models

import (
	"massageshop/internal/domain"
)

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Description     *string `json:"description,omitempty"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService конвертирует domain.Service в response модель
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Description:     svc.Description,
	}
}

// FromDomainServiceList конвертирует список domain.Service в response модель
func FromDomainServiceList(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
		Total:    len(services),
	}
	for i := range services {
		resp.Services = append(resp.Services, *FromDomainService(&services[i]))
	}
	return resp
}
