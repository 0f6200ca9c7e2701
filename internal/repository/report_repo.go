package repository

import (
	"sort"
	"time"

	"salon-inventory/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	GetOverview() (*Overview, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData is one chart point: order quantities in, usage out.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// Overview holds the catalog-wide stats.
type Overview struct {
	TotalProducts  int64 `json:"total_products"`
	LowStockCount  int64 `json:"low_stock_count"`
	TotalValuation int64 `json:"total_valuation"`
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) GetOverview() (*Overview, error) {
	var stats Overview

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("current_stock <= min_stock").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(current_stock * price_per_unit), 0)").
		Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetStockMovement aggregates both history tables per day. Orders count as
// inbound, usage as outbound.
func (r *reportRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	type row struct {
		Date  string
		Total int
	}

	var inbound []row
	err := r.db.Model(&model.OrderRecord{}).
		Select("DATE(order_date) as date, COALESCE(SUM(quantity), 0) as total").
		Where("order_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(order_date)").
		Scan(&inbound).Error
	if err != nil {
		return nil, err
	}

	var outbound []row
	err = r.db.Model(&model.UsageRecord{}).
		Select("DATE(usage_date) as date, COALESCE(SUM(quantity), 0) as total").
		Where("usage_date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(usage_date)").
		Scan(&outbound).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*StockMovementData)
	for _, in := range inbound {
		byDate[in.Date] = &StockMovementData{Date: in.Date, Inbound: in.Total}
	}
	for _, out := range outbound {
		if d, ok := byDate[out.Date]; ok {
			d.Outbound = out.Total
		} else {
			byDate[out.Date] = &StockMovementData{Date: out.Date, Outbound: out.Total}
		}
	}

	results := make([]StockMovementData, 0, len(byDate))
	for _, d := range byDate {
		results = append(results, *d)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })

	return results, nil
}
