package service

import (
	"time"

	"salon-inventory/internal/repository"
)

type ReportService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetOverview() (*repository.Overview, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.reportRepo.GetStockMovement(startDate, endDate)
}

func (s *reportService) GetOverview() (*repository.Overview, error) {
	return s.reportRepo.GetOverview()
}
