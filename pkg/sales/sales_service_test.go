package sales

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeSaleRepo struct {
	sales []*entities.Sale
}

func (f *fakeSaleRepo) RecordSale(_ context.Context, sale *entities.Sale) error {
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) GetSales(_ context.Context, storeID string, _, _ int) ([]*entities.Sale, int64, error) {
	var out []*entities.Sale
	for _, sale := range f.sales {
		if sale.StoreID.String() == storeID {
			out = append(out, sale)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSaleRepo) GetSalesSince(_ context.Context, storeID string, since time.Time) ([]*entities.Sale, error) {
	var out []*entities.Sale
	for _, sale := range f.sales {
		if sale.StoreID.String() == storeID && !sale.Date.Before(since) {
			out = append(out, sale)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	product *entities.Product
}

func (f *fakeProductRepo) CreateProduct(context.Context, *entities.Product) error { return nil }

func (f *fakeProductRepo) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	if f.product != nil && f.product.ID.String() == id {
		return f.product, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) GetProducts(context.Context, string, string, int, int) ([]*entities.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) UpdateProduct(context.Context, *entities.Product) error { return nil }
func (f *fakeProductRepo) DeleteProduct(context.Context, string) error            { return nil }

type fakeInventoryService struct {
	adjustments []domain.AdjustInventoryRequest
	outOfStock  bool
}

func (f *fakeInventoryService) GetInventory(context.Context, string, string) ([]domain.InventoryItemResponse, error) {
	return nil, nil
}

func (f *fakeInventoryService) AdjustInventory(_ context.Context, _ string, req domain.AdjustInventoryRequest, _ string) (domain.InventoryItemResponse, error) {
	if f.outOfStock {
		return domain.InventoryItemResponse{}, domain.ErrNegativeStock
	}
	f.adjustments = append(f.adjustments, req)
	return domain.InventoryItemResponse{ProductID: req.ProductID}, nil
}

func (f *fakeInventoryService) SetReorderPoint(context.Context, string, domain.SetReorderPointRequest, string) error {
	return nil
}

func (f *fakeInventoryService) LowStockReport(context.Context, string, string, bool) (domain.LowStockReportResponse, error) {
	return domain.LowStockReportResponse{}, nil
}

type fakeStoreService struct {
	owned *entities.Store
}

func (f *fakeStoreService) CreateStore(context.Context, domain.CreateStoreRequest, string) (domain.StoreResponse, error) {
	return domain.StoreResponse{}, nil
}

func (f *fakeStoreService) GetStores(context.Context, string) ([]domain.StoreResponse, error) {
	return nil, nil
}

func (f *fakeStoreService) GetStoreByID(context.Context, string, string) (domain.StoreResponse, error) {
	return domain.StoreResponse{}, nil
}

func (f *fakeStoreService) UpdateStore(context.Context, string, domain.UpdateStoreRequest, string) error {
	return nil
}

func (f *fakeStoreService) DeleteStore(context.Context, string, string) error { return nil }

func (f *fakeStoreService) VerifyOwnership(_ context.Context, storeID string, _ string) (*entities.Store, error) {
	if f.owned != nil && f.owned.ID.String() == storeID {
		return f.owned, nil
	}
	return nil, domain.ErrStoreNotFound
}

func newSaleFixture() (*saleService, *fakeSaleRepo, *fakeInventoryService, *entities.Store, *entities.Product) {
	ownedStore := &entities.Store{ID: uuid.New(), Name: "Main Street"}
	soldProduct := &entities.Product{ID: uuid.New(), StoreID: ownedStore.ID, Name: "Espresso Beans", Price: 12.5}

	repo := &fakeSaleRepo{}
	inv := &fakeInventoryService{}
	svc := NewSaleService(repo, &fakeProductRepo{product: soldProduct}, inv, &fakeStoreService{owned: ownedStore}).(*saleService)
	svc.now = func() time.Time { return time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC) }
	return svc, repo, inv, ownedStore, soldProduct
}

func TestRecordSaleWritesRowAndDecrementsStock(t *testing.T) {
	t.Parallel()

	svc, repo, inv, ownedStore, soldProduct := newSaleFixture()

	res, err := svc.RecordSale(context.Background(), ownedStore.ID.String(), domain.RecordSaleRequest{
		ProductID: soldProduct.ID.String(),
		Quantity:  4,
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	if res.Revenue != 50 {
		t.Fatalf("expected revenue 4 × 12.5 = 50, got %v", res.Revenue)
	}
	if res.Date.IsZero() {
		t.Fatal("expected the sale date to default to now")
	}

	if len(inv.adjustments) != 1 {
		t.Fatalf("expected one inventory adjustment, got %d", len(inv.adjustments))
	}
	adj := inv.adjustments[0]
	if adj.Delta != -4 || adj.Reason != domain.AdjustReasonSale {
		t.Fatalf("unexpected adjustment: %+v", adj)
	}

	// The row must be visible through the window read the forecast uses.
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	window, err := repo.GetSalesSince(context.Background(), ownedStore.ID.String(), since)
	if err != nil {
		t.Fatalf("GetSalesSince failed: %v", err)
	}
	if len(window) != 1 || window[0].Quantity != 4 {
		t.Fatalf("expected the recorded sale in the window, got %+v", window)
	}
}

func TestRecordSaleKeepsExplicitRevenue(t *testing.T) {
	t.Parallel()

	svc, _, _, ownedStore, soldProduct := newSaleFixture()

	res, err := svc.RecordSale(context.Background(), ownedStore.ID.String(), domain.RecordSaleRequest{
		ProductID: soldProduct.ID.String(),
		Quantity:  2,
		Revenue:   20, // discounted
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}
	if res.Revenue != 20 {
		t.Fatalf("expected explicit revenue to win, got %v", res.Revenue)
	}
}

func TestRecordSaleStopsWhenStockWouldGoNegative(t *testing.T) {
	t.Parallel()

	svc, repo, inv, ownedStore, soldProduct := newSaleFixture()
	inv.outOfStock = true

	_, err := svc.RecordSale(context.Background(), ownedStore.ID.String(), domain.RecordSaleRequest{
		ProductID: soldProduct.ID.String(),
		Quantity:  1,
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock, got %v", err)
	}
	if len(repo.sales) != 0 {
		t.Fatal("no sale row may be written when the stock move fails")
	}
}

func TestRecordSaleRejectsForeignProduct(t *testing.T) {
	t.Parallel()

	svc, _, _, ownedStore, _ := newSaleFixture()

	_, err := svc.RecordSale(context.Background(), ownedStore.ID.String(), domain.RecordSaleRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRecordSaleRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc, _, _, ownedStore, soldProduct := newSaleFixture()

	_, err := svc.RecordSale(context.Background(), ownedStore.ID.String(), domain.RecordSaleRequest{
		ProductID: soldProduct.ID.String(),
		Quantity:  0,
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrInvalidSaleQuantity) {
		t.Fatalf("expected ErrInvalidSaleQuantity, got %v", err)
	}
}
