package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/auth"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Sessions   sessionResolver
	Profiles   profileReader
	FlowUC     *onboarding.FlowUseCase
	ProfileUC  *usecase.ProfileUseCase
	BusinessUC *usecase.BusinessUseCase
	ProductUC  *usecase.ProductUseCase
	ReviewUC   *usecase.ReviewUseCase
	FavoriteUC *usecase.FavoriteUseCase
	CatalogUC  *usecase.CatalogUseCase
	Images     imageSource // opcional: sin bucket local no se sirve /imagenes

	RequestTimeout time.Duration
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	app.Use(RequestLogger(log), RequestTimeout(timeout))

	if deps.Images != nil {
		app.Get("/imagenes/*", NewImageHandler(deps.Images).Get)
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := api.Group("/catalogo")
	catalog.Get("/", catalogHandler.List)
	catalog.Get("/:id", catalogHandler.Detail)
	catalog.Get("/:id/pdf", catalogHandler.PDF)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	requireSession := AuthMiddleware(deps.Sessions)

	api.Post("/auth/logout", requireSession, authHandler.Logout)

	reviewHandler := NewReviewHandler(deps.ReviewUC)
	catalog.Post("/:id/reviews", requireSession, reviewHandler.Create)
	api.Get("/mis-resenas", requireSession, reviewHandler.ListMine)

	// Onboarding: /dashboard resuelve perfil → rol → negocio
	dashboardHandler := NewDashboardHandler(deps.FlowUC)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile := api.Group("/profile", requireSession)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Put("/role", dashboardHandler.SelectRole)

	dashboard := api.Group("/dashboard", requireSession)
	dashboard.Get("/", dashboardHandler.Get)

	// Secciones del emprendedor
	seller := RequireRole(entity.RoleEmprendedor, deps.Profiles)

	businessHandler := NewBusinessHandler(deps.BusinessUC)
	dashboard.Post("/business", seller, businessHandler.Create)
	dashboard.Get("/business", seller, businessHandler.GetMine)
	dashboard.Put("/business", seller, businessHandler.Update)

	productHandler := NewProductHandler(deps.ProductUC)
	dashboard.Get("/products", seller, productHandler.List)
	dashboard.Post("/products", seller, productHandler.Create)
	dashboard.Get("/products/:id", seller, productHandler.GetByID)
	dashboard.Put("/products/:id", seller, productHandler.Update)
	dashboard.Delete("/products/:id", seller, productHandler.Delete)

	dashboard.Get("/reviews", seller, reviewHandler.ListForOwner)

	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	favorites := api.Group("/favoritos", requireSession)
	favorites.Get("/", favoriteHandler.List)
	favorites.Post("/:businessID", favoriteHandler.Add)
	favorites.Delete("/:businessID", favoriteHandler.Remove)
}
