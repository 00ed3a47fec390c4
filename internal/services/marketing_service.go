package services

import (
	"fmt"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/report"
)

// MarketingService builds the campaign performance report document consumed
// by both the HTML preview and the PDF download.
type MarketingService struct {
	Campaigns *repos.CampaignRepo
}

func NewMarketingService(campaigns *repos.CampaignRepo) *MarketingService {
	return &MarketingService{Campaigns: campaigns}
}

func (s *MarketingService) PerformanceReport(storeName, dateRange string) (report.Document, error) {
	campaigns, err := s.Campaigns.List()
	if err != nil {
		return report.Document{}, err
	}

	var impressions, clicks, conversions int
	var spend, revenue float64
	rows := make([][]string, 0, len(campaigns))
	for _, c := range campaigns {
		impressions += c.Impressions
		clicks += c.Clicks
		conversions += c.Conversions
		spend += c.Spend
		revenue += c.Revenue

		ctr := 0.0
		if c.Impressions > 0 {
			ctr = float64(c.Clicks) / float64(c.Impressions) * 100
		}
		rows = append(rows, []string{
			c.Name,
			c.Channel,
			report.Number(c.Impressions),
			report.Number(c.Clicks),
			fmt.Sprintf("%.2f%%", ctr),
			report.Number(c.Conversions),
			report.Currency(c.Spend),
			report.Currency(c.Revenue),
		})
	}

	roas := "-"
	if spend > 0 {
		roas = fmt.Sprintf("%.2fx", revenue/spend)
	}

	return report.Document{
		Title:     "Marketing Performance Report",
		Subtitle:  storeName,
		DateRange: dateRange,
		Metrics: []report.Metric{
			{Label: "Impressions", Value: report.Number(impressions)},
			{Label: "Clicks", Value: report.Number(clicks)},
			{Label: "Conversions", Value: report.Number(conversions)},
			{Label: "Spend", Value: report.Currency(spend)},
			{Label: "Revenue", Value: report.Currency(revenue)},
			{Label: "ROAS", Value: roas},
		},
		Tables: []report.Table{
			{
				Title:   "Campaigns",
				Columns: []string{"Campaign", "Channel", "Impressions", "Clicks", "CTR", "Conversions", "Spend", "Revenue"},
				Rows:    rows,
			},
		},
	}, nil
}
