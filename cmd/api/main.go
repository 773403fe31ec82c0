package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/MercadoLocal-api/internal/application/analytics"
	"github.com/jhoicas/MercadoLocal-api/internal/application/auth"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/MercadoLocal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/postgres"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/MercadoLocal-api/internal/interfaces/http"
	"github.com/jhoicas/MercadoLocal-api/pkg/config"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
)

// repos agrupa los repositorios del driver elegido.
type repos struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	profiles   repository.ProfileRepository
	businesses repository.BusinessRepository
	products   repository.ProductRepository
	reviews    repository.ReviewRepository
	favorites  repository.FavoriteRepository
	tx         ports.BusinessTxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.DB.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		r = repos{
			users: store.Users(), sessions: store.Sessions(), profiles: store.Profiles(),
			businesses: store.Businesses(), products: store.Products(), reviews: store.Reviews(),
			favorites: store.Favorites(), tx: store.TxRunner(),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		r = repos{
			users:      postgres.NewUserRepository(pool),
			sessions:   postgres.NewSessionRepository(pool),
			profiles:   postgres.NewProfileRepository(pool),
			businesses: postgres.NewBusinessRepository(pool),
			products:   postgres.NewProductRepository(pool),
			reviews:    postgres.NewReviewRepository(pool),
			favorites:  postgres.NewFavoriteRepository(pool),
			tx:         postgres.NewTxRunner(pool),
		}
	}

	// Imágenes: logos y fotos de productos
	blobs, err := storage.Open(ctx, cfg.Storage.BucketURL, cfg.Storage.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}
	defer blobs.Close()
	maxUpload := int64(cfg.Storage.MaxUploadMB) << 20
	images := usecase.NewImageUploader(blobs, maxUpload)

	authUC := auth.NewAuthUseCase(r.users, r.sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sessions := auth.NewSessionResolver(r.sessions, cfg.JWT.Secret, log)
	dashboardUC := analytics.NewDashboardUseCase(r.products, r.reviews)
	flowUC := onboarding.NewFlowUseCase(r.profiles, r.businesses, dashboardUC)
	businessUC := usecase.NewBusinessUseCase(r.businesses, r.profiles, r.tx, images, log)

	// PDF: catálogo compartible con QR al enlace público
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	catalogUC := usecase.NewCatalogUseCase(r.businesses, r.products, pdfGenerator, cfg.App.PublicURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(maxUpload) + 1<<20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MercadoLocal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Sessions:       sessions,
		Profiles:       r.profiles,
		FlowUC:         flowUC,
		ProfileUC:      usecase.NewProfileUseCase(r.profiles),
		BusinessUC:     businessUC,
		ProductUC:      usecase.NewProductUseCase(r.products, businessUC, images),
		ReviewUC:       usecase.NewReviewUseCase(r.reviews, r.businesses, r.products, businessUC),
		FavoriteUC:     usecase.NewFavoriteUseCase(r.favorites, r.businesses),
		CatalogUC:      catalogUC,
		Images:         blobs,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
