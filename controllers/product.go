package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"foxy-admin/models"
	"foxy-admin/projection"
	"foxy-admin/services"
)

const maxUploadSize = 10 << 20

// ProductController handles product-related requests
type ProductController struct {
	*View
	Products *services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(view *View, products *services.ProductService) *ProductController {
	return &ProductController{View: view, Products: products}
}

// operationStatus maps a service error to its HTTP status
func operationStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func productForm(r *http.Request) models.ProductForm {
	return models.ProductForm{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Quantity:    r.FormValue("quantity"),
		Description: r.FormValue("description"),
		Adoptable:   r.FormValue("adoptable") != "",
	}
}

// ListProducts renders the product management page
func (pc *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{}

	products, err := pc.Products.List(r.Context())
	if err != nil {
		data["Products"] = []models.ProductDisplay{}
		data["ErrorMessage"] = fmt.Sprintf("Database error: %v", err)
	} else {
		data["Products"] = products
	}
	pc.Render(w, r, "product_management.html", "Products", data)
}

// CreateForm renders an empty product form
func (pc *ProductController) CreateForm(w http.ResponseWriter, r *http.Request) {
	pc.renderCreate(w, r, models.ProductForm{}, "")
}

func (pc *ProductController) renderCreate(w http.ResponseWriter, r *http.Request, form models.ProductForm, errMsg string) {
	pc.Render(w, r, "create_product.html", "New product", map[string]interface{}{
		"Form":         form,
		"ErrorMessage": errMsg,
	})
}

// CreateProduct handles the new product form, with an optional image
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		pc.renderCreate(w, r, models.ProductForm{}, "File too large. Max 10MB.")
		return
	}
	form := productForm(r)

	var upload *services.ImageUpload
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		upload = &services.ImageUpload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		pc.renderCreate(w, r, form, "Failed to read uploaded image.")
		return
	}

	id, err := pc.Products.Create(r.Context(), form, upload)
	var verr *projection.ValidationError
	switch {
	case errors.As(err, &verr):
		pc.renderCreate(w, r, form, verr.Message)
		return
	case errors.Is(err, services.ErrInvalidImage):
		pc.renderCreate(w, r, form, err.Error())
		return
	case err != nil:
		pc.renderCreate(w, r, form, fmt.Sprintf("Database error: %v", err))
		return
	}

	slog.Info("Product created via admin", "product_id", id)
	pc.Flash(w, r, "success", "Product created successfully")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// EditForm renders the edit form for one product
func (pc *ProductController) EditForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, err := pc.Products.Get(r.Context(), id)
	if err != nil {
		pc.productError(w, err)
		return
	}
	pc.Render(w, r, "edit_product.html", "Edit product", map[string]interface{}{
		"Product": product,
	})
}

func (pc *ProductController) productError(w http.ResponseWriter, err error) {
	switch status := operationStatus(err); status {
	case http.StatusBadRequest:
		http.Error(w, "Invalid product ID", status)
	case http.StatusNotFound:
		http.Error(w, "Product not found", status)
	default:
		http.Error(w, fmt.Sprintf("Database error: %v", err), status)
	}
}

// UpdateProduct handles the edit form. Invalid input re-renders the form with
// the stored values and the error.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	err := pc.Products.Update(r.Context(), id, productForm(r))
	var verr *projection.ValidationError
	switch {
	case err == nil:
		pc.Flash(w, r, "success", "Product updated successfully")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
	case errors.As(err, &verr):
		pc.editFormWithError(w, r, id, verr.Message)
	case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrNotFound):
		pc.productError(w, err)
	default:
		pc.editFormWithError(w, r, id, fmt.Sprintf("Database error: %v", err))
	}
}

func (pc *ProductController) editFormWithError(w http.ResponseWriter, r *http.Request, id, errMsg string) {
	product, err := pc.Products.Get(r.Context(), id)
	if err != nil {
		pc.productError(w, err)
		return
	}
	pc.Render(w, r, "edit_product.html", "Edit product", map[string]interface{}{
		"Product":      product,
		"ErrorMessage": errMsg,
	})
}

// DeleteProduct removes a product and answers with JSON
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := pc.Products.Delete(r.Context(), id)
	if err != nil {
		status := operationStatus(err)
		msg := fmt.Sprintf("Database error: %v", err)
		switch status {
		case http.StatusBadRequest:
			msg = "Invalid product ID"
		case http.StatusNotFound:
			msg = "Product not found"
		}
		writeJSON(w, status, models.ProductOperationResponse{Success: false, Message: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.ProductOperationResponse{
		Success:   true,
		Message:   "Product deleted successfully",
		ProductID: id,
	})
}
