package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"foxy-admin/models"
	"foxy-admin/projection"
	"foxy-admin/store"
)

// ProductService manages the product catalogue
type ProductService struct {
	repo   store.ProductRepository
	images *ImageStore
}

// NewProductService creates a ProductService. images may be nil when uploads are disabled.
func NewProductService(repo store.ProductRepository, images *ImageStore) *ProductService {
	return &ProductService{repo: repo, images: images}
}

// List returns every product ready for display
func (s *ProductService) List(ctx context.Context) ([]models.ProductDisplay, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		slog.Error("Failed to list products", "error", err)
		return nil, err
	}
	return projection.Products(products), nil
}

// Get returns one product
func (s *ProductService) Get(ctx context.Context, id string) (models.ProductDisplay, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.ProductDisplay{}, err
	}

	product, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return models.ProductDisplay{}, err
	}
	if product == nil {
		return models.ProductDisplay{}, ErrNotFound
	}
	return projection.Product(*product), nil
}

// Create validates form, stores the optional image and inserts the product
func (s *ProductService) Create(ctx context.Context, form models.ProductForm, upload *ImageUpload) (string, error) {
	_, quantity, err := projection.ValidateProductForm(form)
	if err != nil {
		return "", err
	}

	product := models.Product{
		Name:        form.Name,
		Price:       strings.TrimSpace(form.Price),
		Quantity:    quantity,
		Description: form.Description,
		Adoptable:   form.Adoptable,
	}

	if upload != nil && s.images != nil {
		url, err := s.images.Save(*upload)
		if err != nil {
			return "", err
		}
		product.ImageURL = url
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		slog.Error("Failed to create product", "error", err)
		if product.ImageURL != "" {
			if rerr := s.images.Remove(product.ImageURL); rerr != nil {
				slog.Warn("Failed to remove orphaned image", "image_url", product.ImageURL, "error", rerr)
			}
		}
		return "", fmt.Errorf("creating product: %w", err)
	}
	slog.Info("Product created", "product_id", id.Hex(), "name", product.Name)
	return id.Hex(), nil
}

// Update validates form before writing anything
func (s *ProductService) Update(ctx context.Context, id string, form models.ProductForm) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, quantity, err := projection.ValidateProductForm(form)
	if err != nil {
		return err
	}

	matched, err := s.repo.Update(ctx, oid, models.ProductUpdate{
		Name:        form.Name,
		Price:       strings.TrimSpace(form.Price),
		Quantity:    quantity,
		Description: form.Description,
		Adoptable:   form.Adoptable,
	})
	if err != nil {
		slog.Error("Failed to update product", "product_id", id, "error", err)
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		slog.Error("Failed to delete product", "product_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	slog.Info("Product deleted", "product_id", id)
	return nil
}
