// main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foxy-admin/auth"
	"foxy-admin/config"
	"foxy-admin/controllers"
	"foxy-admin/middleware"
	"foxy-admin/routes"
	"foxy-admin/services"
	"foxy-admin/store"
	"foxy-admin/templates"
	"foxy-admin/utils"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect to MongoDB
	client, err := utils.ConnectDB(context.Background(), cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()
	repos := store.NewRepositories(client.Database(cfg.Database))

	// Sessions
	provider := auth.NewProvider(repos.Users, utils.NewTokenSigner(cfg.SessionKey), cfg.SessionTTL, cfg.CookieSecure)

	sessionStore := sessions.NewCookieStore(cfg.FlashKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"

	tmpl := templates.NewCache()
	if err := tmpl.Load(); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}
	view := &controllers.View{Templates: tmpl, Sessions: sessionStore}

	// Initialize services and controllers
	notifier := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)
	products := services.NewProductService(repos.Products, services.NewImageStore(cfg.UploadsDir, "/static/uploads/"))
	orders := services.NewOrderService(repos.Orders, notifier)
	quotes := services.NewQuoteService(repos.Quotes)
	badges := &services.BadgeImages{Dir: cfg.PrivateUploadsDir}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Users:    controllers.NewUserController(view, provider),
		Products: controllers.NewProductController(view, products),
		Orders:   controllers.NewOrderController(view, orders),
		Quotes:   controllers.NewQuoteController(view, quotes, badges),
		System:   controllers.NewSystemController(view, cfg.VersionFile, cfg.Environment),
	}, provider, cfg.StaticDir)

	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port}),
	)

	// Chain: Request ID -> Logger -> Security Headers -> CSRF -> Router
	handler := middleware.RequestID(
		middleware.Logging(
			middleware.SecurityHeaders(
				CSRF(router),
			),
		),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Admin server is running", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server exiting")
}
