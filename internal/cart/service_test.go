package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yallashop/yallashop-backend/internal/catalog"
	pkgerrors "github.com/yallashop/yallashop-backend/pkg/errors"
)

type productResolverFunc func(id string) (catalog.Product, error)

func (fn productResolverFunc) FindByID(id string) (catalog.Product, error) {
	return fn(id)
}

func resolverFixture() productResolverFunc {
	products := map[string]catalog.Product{
		"p-1": {ID: "p-1", Slug: "phone", Title: "Phone", Brand: "Orbit", Price: decimal.NewFromInt(4500), InStock: true},
		"p-2": {ID: "p-2", Slug: "case", Title: "Phone Case", Brand: "Orbit", Price: decimal.NewFromInt(250), InStock: true},
		"p-3": {ID: "p-3", Slug: "dock", Title: "Charging Dock", Brand: "Volt", Price: decimal.NewFromInt(900), InStock: false},
	}
	return func(id string) (catalog.Product, error) {
		p, ok := products[id]
		if !ok {
			return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return p, nil
	}
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, resolverFixture())
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestFetchReturnsEmptyCartWhenMissing(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	got, err := svc.Fetch(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "tok-1" || len(got.Lines) != 0 || got.IsOpen {
		t.Fatalf("expected fresh closed cart, got %+v", got)
	}
}

func TestFetchRequiresToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	_, err := svc.Fetch(context.Background(), "  ")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	svc := newTestService(t, repo)

	got, err := svc.AddItem(context.Background(), "tok-1", "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(got.Lines))
	}
	line := got.Lines[0]
	if line.Title != "Phone" || line.Slug != "phone" || !line.UnitPrice.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("expected product snapshot, got %+v", line)
	}

	// The cart survives a round trip through the repository.
	reloaded, err := svc.Fetch(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Lines) != 1 || reloaded.Lines[0].ProductID != "p-1" {
		t.Fatalf("expected persisted cart, got %+v", reloaded)
	}
}

func TestAddItemMergesQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.AddItem(ctx, "tok-1", "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("expected merged line with quantity 2, got %+v", got.Lines)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	_, err := svc.AddItem(context.Background(), "tok-1", "missing")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemOutOfStock(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	_, err := svc.AddItem(context.Background(), "tok-1", "p-3")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateItemQuantityFloorRemoves(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.UpdateItem(ctx, "tok-1", "p-1", -2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Lines)
	}
}

func TestUpdateItemSetsExactQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", "p-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.UpdateItem(ctx, "tok-1", "p-2", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", got.Lines[0].Quantity)
	}
	if got.Count() != 7 || !got.Total().Equal(decimal.NewFromInt(1750)) {
		t.Fatalf("unexpected totals count=%d total=%s", got.Count(), got.Total())
	}
}

func TestRemoveItemAbsentSucceeds(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	got, err := svc.RemoveItem(context.Background(), "tok-1", "p-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", got.Lines)
	}
}

func TestSetOpenPersistsFlag(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, NewMemoryRepository())
	ctx := context.Background()

	got, err := svc.SetOpen(ctx, "tok-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsOpen {
		t.Fatal("expected open cart")
	}

	reloaded, err := svc.Fetch(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.IsOpen {
		t.Fatal("expected flag to persist")
	}

	closed, err := svc.SetOpen(ctx, "tok-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.IsOpen {
		t.Fatal("expected closed cart")
	}
}

func TestRepositoryFailureSurfacesAsDependency(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, failingRepo{})
	_, err := svc.Fetch(context.Background(), "tok-1")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

type failingRepo struct{}

func (failingRepo) Find(ctx context.Context, token string) (*Cart, error) {
	return nil, errors.New("redis unavailable")
}
func (failingRepo) Save(ctx context.Context, record *Cart) error { return errors.New("redis unavailable") }
func (failingRepo) Delete(ctx context.Context, token string) error {
	return errors.New("redis unavailable")
}
