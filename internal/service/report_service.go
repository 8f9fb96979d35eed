package service

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bizpulse/storesim/internal/model"
	"github.com/bizpulse/storesim/internal/repository"
	"github.com/bizpulse/storesim/internal/templates"
)

type ReportService struct {
	stores       *repository.StoreRepository
	analyticsSvc *AnalyticsService
	customerSvc  *CustomerService
}

func NewReportService(stores *repository.StoreRepository, analyticsSvc *AnalyticsService, customerSvc *CustomerService) *ReportService {
	return &ReportService{stores: stores, analyticsSvc: analyticsSvc, customerSvc: customerSvc}
}

type ReportData struct {
	GeneratedAt string
	Store       *model.Store
	Analytics   Analytics
	Customers   CustomerAnalytics
}

func (s *ReportService) GenerateReport(ctx context.Context, storeID string) (*ReportData, error) {
	store, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	var analytics Analytics
	g.Go(func() error {
		var err error
		analytics, err = s.analyticsSvc.GetAnalytics(gctx, storeID)
		return err
	})

	var customers CustomerAnalytics
	g.Go(func() error {
		var err error
		customers, err = s.customerSvc.Analytics(gctx, storeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ReportData{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05 MST"),
		Store:       store,
		Analytics:   analytics,
		Customers:   customers,
	}, nil
}

func (s *ReportService) RenderHTML(data *ReportData) (string, error) {
	funcMap := template.FuncMap{
		"toLower": strings.ToLower,
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(templates.Report)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
