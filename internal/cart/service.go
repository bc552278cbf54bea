package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/yallashop/yallashop-backend/internal/catalog"
	pkgerrors "github.com/yallashop/yallashop-backend/pkg/errors"
)

type productResolver interface {
	FindByID(id string) (catalog.Product, error)
}

// Service exposes the session cart operations.
type Service interface {
	Fetch(ctx context.Context, token string) (*Cart, error)
	AddItem(ctx context.Context, token, productID string) (*Cart, error)
	UpdateItem(ctx context.Context, token, productID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, token, productID string) (*Cart, error)
	SetOpen(ctx context.Context, token string, open bool) (*Cart, error)
}

type service struct {
	repo     Repository
	products productResolver
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, products productResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product resolver required")
	}
	return &service{repo: repo, products: products}, nil
}

// Fetch loads the session cart, returning a fresh empty cart when none has
// been persisted yet.
func (s *service) Fetch(ctx context.Context, token string) (*Cart, error) {
	return s.load(ctx, token)
}

// AddItem resolves the product from the catalog, snapshots it into the cart
// and persists the result. Out-of-stock products are rejected.
func (s *service) AddItem(ctx context.Context, token, productID string) (*Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	record, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is out of stock")
	}

	record.Add(LineItem{
		ProductID: product.ID,
		Slug:      product.Slug,
		Title:     product.Title,
		Brand:     product.Brand,
		Image:     product.Image,
		UnitPrice: product.Price,
	})

	return s.persist(ctx, record)
}

// UpdateItem sets the quantity of an existing line. Zero or negative
// quantities remove the line.
func (s *service) UpdateItem(ctx context.Context, token, productID string, quantity int) (*Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	record, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	record.SetQuantity(productID, quantity)
	return s.persist(ctx, record)
}

// RemoveItem drops the line for the product. Removing an absent product is
// not an error.
func (s *service) RemoveItem(ctx context.Context, token, productID string) (*Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	record, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	record.Remove(productID)
	return s.persist(ctx, record)
}

// SetOpen flips the mini-cart visibility flag.
func (s *service) SetOpen(ctx context.Context, token string, open bool) (*Cart, error) {
	record, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	record.IsOpen = open
	return s.persist(ctx, record)
}

func (s *service) load(ctx context.Context, token string) (*Cart, error) {
	if strings.TrimSpace(token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}

	record, err := s.repo.Find(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if record == nil {
		record = NewCart(token)
	}
	return record, nil
}

func (s *service) persist(ctx context.Context, record *Cart) (*Cart, error) {
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return record, nil
}
