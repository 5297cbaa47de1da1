package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/store"
)

type DashboardStats struct {
	NewLeadsToday int `json:"new_leads_today"`
	// AverageResponseTime is minutes, one decimal, over leads that have one.
	AverageResponseTime float64      `json:"average_response_time"`
	ConversionRate      int          `json:"conversion_rate"` // percent, rounded
	TotalProperties     int          `json:"total_properties"`
	TotalLeads          int          `json:"total_leads"`
	RecentLeads         []model.Lead `json:"recent_leads"`
}

type DashboardService interface {
	Stats(ctx context.Context, userID int64) (*DashboardStats, error)
}

type dashboardService struct {
	leads      store.LeadStore
	properties store.PropertyStore
}

func NewDashboardService(leads store.LeadStore, properties store.PropertyStore) DashboardService {
	return &dashboardService{leads: leads, properties: properties}
}

func (s *dashboardService) Stats(ctx context.Context, userID int64) (*DashboardStats, error) {
	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	properties, err := s.properties.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	newToday := 0
	converted := 0
	var responseSum, responseCount float64
	for _, lead := range leads {
		if !lead.CreatedAt.Before(midnight) {
			newToday++
		}
		if lead.Status == model.LeadStatusConverted {
			converted++
		}
		if lead.ResponseTime != nil {
			responseSum += float64(*lead.ResponseTime)
			responseCount++
		}
	}

	avgResponse := 0.0
	if responseCount > 0 {
		avgResponse = math.Round(responseSum/responseCount*10) / 10
	}
	conversionRate := 0
	if len(leads) > 0 {
		conversionRate = int(math.Round(float64(converted) / float64(len(leads)) * 100))
	}

	recent := leads
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &DashboardStats{
		NewLeadsToday:       newToday,
		AverageResponseTime: avgResponse,
		ConversionRate:      conversionRate,
		TotalProperties:     len(properties),
		TotalLeads:          len(leads),
		RecentLeads:         recent,
	}, nil
}
