package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"streamvault_backend/internal/controller"
	"streamvault_backend/internal/middleware"
	"streamvault_backend/internal/store"
	"streamvault_backend/pkg/config"
	"streamvault_backend/pkg/cron"
	"streamvault_backend/pkg/email"
	"streamvault_backend/pkg/payment"
	"streamvault_backend/pkg/plan"
	"streamvault_backend/pkg/seed"
	"streamvault_backend/pkg/storage"
	"streamvault_backend/pkg/utils/jwt"
)

func setupRoutes(app *fiber.App, st *store.Store) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)
	auth.Get("/me", middleware.AuthMiddleware(), controller.GetMe)

	// Public plan catalog; catalog management is admin-only.
	api.Get("/products", controller.ListProducts)
	api.Get("/products/:id", controller.GetProduct)
	api.Post("/products", middleware.AuthMiddleware(), controller.CreateProduct)
	api.Put("/products/:id", middleware.AuthMiddleware(), controller.UpdateProduct)

	// Session (current customer) routes
	session := api.Group("/session")
	session.Get("/customer", controller.GetCurrentCustomer)
	session.Post("/customer", controller.SetCurrentCustomer)
	session.Delete("/customer", controller.ClearSession)

	// Protected console routes
	protected := api.Group("/", middleware.AuthMiddleware())

	customers := protected.Group("/customers")
	customers.Get("/", controller.ListCustomers)
	customers.Post("/", controller.CreateCustomer)
	customers.Get("/:id", controller.GetCustomer)
	customers.Put("/:id", controller.UpdateCustomer)
	customers.Delete("/:id", controller.DeleteCustomer)
	customers.Get("/:id/subscription", controller.GetCustomerSubscription)
	customers.Get("/:id/invoices", controller.GetCustomerInvoices)
	customers.Get("/:id/tickets", controller.GetCustomerTickets)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.Get("/", controller.ListSubscriptions)
	subscriptions.Post("/", controller.CreateSubscription)
	subscriptions.Get("/:id", controller.GetSubscription)
	subscriptions.Put("/:id", controller.UpdateSubscription)
	subscriptions.Post("/:id/pause", controller.PauseSubscription)
	subscriptions.Post("/:id/resume", controller.ResumeSubscription)
	subscriptions.Post("/:id/cancel", controller.CancelSubscription)
	subscriptions.Delete("/:id", controller.DeleteSubscription)

	invoices := protected.Group("/invoices")
	invoices.Get("/", controller.ListInvoices)
	invoices.Post("/", controller.CreateInvoice)
	invoices.Get("/:id", controller.GetInvoice)
	invoices.Put("/:id", controller.UpdateInvoice)

	tickets := protected.Group("/tickets")
	tickets.Get("/", controller.ListTickets)
	tickets.Post("/", controller.CreateTicket)
	tickets.Get("/:id", controller.GetTicket)
	tickets.Put("/:id", controller.UpdateTicket)
	tickets.Delete("/:id", controller.DeleteTicket)

	// Self-service ticket form with plan gate: urgent tickets need a plan
	// that includes priority support.
	api.Post("/session/tickets/priority",
		middleware.CheckFeatureAccess(st, plan.PrioritySupport),
		controller.CreateTicket)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
	dashboard.Get("/stats", controller.GetDashboardStats)
}

func newSnapshotStore(cfg *config.Config) storage.SnapshotStore {
	switch cfg.Snapshot.Backend {
	case "database":
		snaps, err := storage.NewDatabaseStore(cfg.Snapshot.Database)
		if err != nil {
			log.Fatal("Could not connect snapshot database:", err)
		}
		return snaps
	case "s3":
		snaps, err := storage.NewS3Store(cfg.Snapshot.Bucket, cfg.Snapshot.Region)
		if err != nil {
			log.Fatal("Could not initialize S3 snapshot store:", err)
		}
		return snaps
	default:
		snaps, err := storage.NewFileStore(cfg.Snapshot.DataDir)
		if err != nil {
			log.Fatal("Could not initialize snapshot directory:", err)
		}
		return snaps
	}
}

func main() {
	cfg := config.Load()

	jwt.SetSecret(cfg.JWT.Secret)
	payment.Init(cfg.Stripe.SecretKey)

	if cfg.Resend.APIKey != "" {
		if err := email.InitEmailService(cfg.Resend.APIKey); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, lifecycle emails disabled")
	}

	st := store.New(newSnapshotStore(cfg))
	st.Hydrate(seed.Demo())
	log.Printf("Store hydrated: %d customers, %d subscriptions",
		len(st.Customers()), len(st.Subscriptions()))

	controller.Init(st, cfg)
	cron.InitBillingSweep(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, st)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
