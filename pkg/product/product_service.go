package product

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"StockPilot-Backend/internal/utils/storage"
	"StockPilot-Backend/pkg/barcode"
	"StockPilot-Backend/pkg/store"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, storeID string, req domain.CreateProductRequest, userID string) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, storeID string, category string, page, limit int, userID string) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, storeID string, id string, userID string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, storeID string, id string, req domain.UpdateProductRequest, userID string) error
		DeleteProduct(ctx context.Context, storeID string, id string, userID string) error
		UploadProductImage(ctx context.Context, storeID string, req domain.UploadProductImageRequest, userID string) (string, error)
		ImportFromBarcode(ctx context.Context, storeID string, req domain.ImportFromBarcodeRequest, userID string) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		storeService      store.StoreService
		barcodeService    barcode.BarcodeService
		s3                storage.AwsS3
	}
)

func NewProductService(
	productRepository ProductRepository,
	storeService store.StoreService,
	barcodeService barcode.BarcodeService,
	s3 storage.AwsS3,
) ProductService {
	return &productService{
		productRepository: productRepository,
		storeService:      storeService,
		barcodeService:    barcodeService,
		s3:                s3,
	}
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:        product.ID.String(),
		StoreID:   product.StoreID.String(),
		Name:      product.Name,
		SKU:       product.SKU,
		Barcode:   product.Barcode,
		Brand:     product.Brand,
		Category:  product.Category,
		Price:     product.Price,
		Cost:      product.Cost,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
	}
}

func (s *productService) getOwnedProduct(ctx context.Context, storeID string, id string, userID string) (*entities.Product, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if product.StoreID.String() != storeID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, storeID string, req domain.CreateProductRequest, userID string) (domain.ProductResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.ProductResponse{}, err
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	if req.Price < 0 {
		return domain.ProductResponse{}, domain.ErrInvalidPrice
	}

	product := &entities.Product{
		ID:       uuid.New(),
		StoreID:  storeUUID,
		Name:     req.Name,
		SKU:      req.SKU,
		Barcode:  req.Barcode,
		Brand:    req.Brand,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
	}
	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, storeID string, category string, page, limit int, userID string) ([]domain.ProductResponse, int64, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, 0, err
	}

	products, count, err := s.productRepository.GetProducts(ctx, storeID, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, storeID string, id string, userID string) (domain.ProductResponse, error) {
	product, err := s.getOwnedProduct(ctx, storeID, id, userID)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, storeID string, id string, req domain.UpdateProductRequest, userID string) error {
	product, err := s.getOwnedProduct(ctx, storeID, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.SKU != "" {
		product.SKU = req.SKU
	}
	if req.Barcode != "" {
		product.Barcode = req.Barcode
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Cost > 0 {
		product.Cost = req.Cost
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, storeID string, id string, userID string) error {
	product, err := s.getOwnedProduct(ctx, storeID, id, userID)
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.productRepository.DeleteProduct(ctx, id)
}

func (s *productService) UploadProductImage(ctx context.Context, storeID string, req domain.UploadProductImageRequest, userID string) (string, error) {
	product, err := s.getOwnedProduct(ctx, storeID, req.ProductID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("product-%s", product.ID.String())
	var objectKey string
	var uploadErr error

	if product.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return "", err
	}

	return product.ImageURL, nil
}

// ImportFromBarcode resolves the code against both lookup services and
// prefills a product from the best result. Callers fall back to manual entry
// when neither source knows the code.
func (s *productService) ImportFromBarcode(ctx context.Context, storeID string, req domain.ImportFromBarcodeRequest, userID string) (domain.ProductResponse, error) {
	if _, err := s.storeService.VerifyOwnership(ctx, storeID, userID); err != nil {
		return domain.ProductResponse{}, err
	}

	lookup, err := s.barcodeService.Lookup(ctx, userID, storeID, req.Barcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	if lookup.Best == nil {
		return domain.ProductResponse{}, domain.ErrNoProductMatch
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	best := lookup.Best
	product := &entities.Product{
		ID:      uuid.New(),
		StoreID: storeUUID,
		Name:    *best.Name,
		Barcode: lookup.Barcode,
		Price:   req.Price,
	}
	if best.Brand != nil {
		product.Brand = *best.Brand
	}
	if best.Category != nil {
		product.Category = *best.Category
	}
	if best.ImageURL != nil {
		product.ImageURL = *best.ImageURL
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}
