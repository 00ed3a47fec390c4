package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/tasks"
)

type Deps struct {
	AuthHandler        *AuthHandler
	DashboardHandler   *DashboardHandler
	InventoryHandler   *InventoryHandler
	ProductHandler     *ProductHandler
	VendorHandler      *VendorHandler
	OrderHandler       *OrderHandler
	EmployeeHandler    *EmployeeHandler
	ContentHandler     *ContentHandler
	IntegrationHandler *IntegrationHandler
	SettingsHandler    *SettingsHandler
	ExportHandler      *ExportHandler
	ReportHandler      *ReportHandler
	AssistantHandler   *AssistantHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService, runner *tasks.Runner) *Deps {
	invRepo := repos.NewInventoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	vendRepo := repos.NewVendorRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	empRepo := repos.NewEmployeeRepo(db)
	contentRepo := repos.NewContentRepo(db)
	intRepo := repos.NewIntegrationRepo(db)
	cmpRepo := repos.NewCampaignRepo(db)
	setRepo := repos.NewSettingsRepo(db)
	statsRepo := repos.NewStatsRepo(db)

	invSvc := services.NewInventoryService(invRepo)
	catalogSvc := services.NewCatalogService(prodRepo, vendRepo)
	orderSvc := services.NewOrderService(orderRepo)
	contentSvc := services.NewContentService(contentRepo)
	intSvc := services.NewIntegrationService(intRepo, runner)
	mktSvc := services.NewMarketingService(cmpRepo)

	return &Deps{
		AuthHandler:        &AuthHandler{Auth: auth},
		DashboardHandler:   &DashboardHandler{Stats: statsRepo},
		InventoryHandler:   &InventoryHandler{Inv: invSvc},
		ProductHandler:     &ProductHandler{Catalog: catalogSvc},
		VendorHandler:      &VendorHandler{Catalog: catalogSvc},
		OrderHandler:       &OrderHandler{Orders: orderSvc},
		EmployeeHandler:    &EmployeeHandler{Employees: empRepo},
		ContentHandler:     &ContentHandler{Content: contentSvc},
		IntegrationHandler: &IntegrationHandler{Integrations: intSvc},
		SettingsHandler:    &SettingsHandler{Settings: setRepo},
		ExportHandler:      &ExportHandler{Inv: invSvc, Catalog: catalogSvc, Orders: orderRepo},
		ReportHandler:      &ReportHandler{Marketing: mktSvc, Settings: setRepo},
		AssistantHandler:   &AssistantHandler{Assistant: &services.AssistantService{}},
	}
}
