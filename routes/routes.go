// routes/routes.go
package routes

import (
	"net/http"

	"foxy-admin/controllers"
	"foxy-admin/middleware"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers mounted by RegisterRoutes
type Controllers struct {
	Users    *controllers.UserController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Quotes   *controllers.QuoteController
	System   *controllers.SystemController
}

// RegisterRoutes sets up all the routes for the admin server.
// The identifier resolves the session cookie on every matched route.
func RegisterRoutes(router *mux.Router, c Controllers, identifier middleware.Identifier, staticDir string) {
	router.Use(middleware.Session(identifier))

	// Public routes
	router.HandleFunc("/login", c.Users.LoginForm).Methods("GET")
	router.HandleFunc("/login", c.Users.Login).Methods("POST")
	router.HandleFunc("/logout", c.Users.Logout).Methods("GET", "POST")
	router.HandleFunc("/", c.Users.Dashboard).Methods("GET")
	router.HandleFunc("/health", c.System.Health).Methods("GET")
	router.HandleFunc("/info", c.System.Info).Methods("GET")

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Admin pages
	pages := router.NewRoute().Subrouter()
	pages.Use(middleware.RequireAdminPage)
	pages.HandleFunc("/products", c.Products.ListProducts).Methods("GET")
	pages.HandleFunc("/products/new", c.Products.CreateForm).Methods("GET")
	pages.HandleFunc("/products/new", c.Products.CreateProduct).Methods("POST")
	pages.HandleFunc("/products/edit/{id}", c.Products.EditForm).Methods("GET")
	pages.HandleFunc("/products/edit/{id}", c.Products.UpdateProduct).Methods("POST")
	pages.HandleFunc("/orders", c.Orders.ListOrders).Methods("GET")
	pages.HandleFunc("/quotes", c.Quotes.ListQuotes).Methods("GET")
	pages.HandleFunc("/calculator", c.System.Calculator).Methods("GET")

	// Admin API
	api := router.NewRoute().Subrouter()
	api.Use(middleware.RequireAdminAPI)
	api.HandleFunc("/products/delete/{id}", c.Products.DeleteProduct).Methods("DELETE")
	api.HandleFunc("/orders/update-status", c.Orders.UpdateOrderStatus).Methods("POST")
	api.HandleFunc("/quotes/update-status", c.Quotes.UpdateQuoteStatus).Methods("POST")
	api.HandleFunc("/quotes/image/{filename}", c.Quotes.BadgeImage).Methods("GET")
}
