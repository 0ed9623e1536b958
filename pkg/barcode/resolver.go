package barcode

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type (
	BarcodeService interface {
		Lookup(ctx context.Context, userID string, storeID string, code string) (domain.LookupBarcodeResponse, error)
		Resolve(ctx context.Context, code string) domain.BarcodeResult
		BestResult(result domain.BarcodeResult) *domain.ProductInfo
		GetScanHistory(ctx context.Context, userID string, page, limit int) ([]*entities.BarcodeScan, int64, error)
	}

	barcodeService struct {
		scanRepository ScanRepository
		opf            *openProductFactsClient
		upc            *upcItemDBClient
	}
)

// NewBarcodeService takes the lookup endpoints rather than reading config
// itself; the caller owns configuration, and tests point the service at local
// servers.
func NewBarcodeService(scanRepository ScanRepository, opfBaseURL, upcBaseURL, upcAPIKey string) BarcodeService {
	client := &http.Client{}
	return &barcodeService{
		scanRepository: scanRepository,
		opf:            &openProductFactsClient{baseURL: opfBaseURL, client: client},
		upc:            &upcItemDBClient{baseURL: upcBaseURL, apiKey: upcAPIKey, client: client},
	}
}

// Resolve queries both sources concurrently and waits for both to finish.
// Neither request is cancelled when the other completes, and a failure on one
// side is logged and collapsed into "no result" for that side only.
func (s *barcodeService) Resolve(ctx context.Context, code string) domain.BarcodeResult {
	code = strings.TrimSpace(code)

	var result domain.BarcodeResult
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		info, err := s.opf.Lookup(ctx, code)
		if err != nil {
			log.Printf("[Barcode] OpenProductFacts lookup failed for %s: %v", code, err)
			return
		}
		result.OpenProductFacts = info
	}()

	go func() {
		defer wg.Done()
		info, err := s.upc.Lookup(ctx, code)
		if err != nil {
			log.Printf("[Barcode] UPCItemDB lookup failed for %s: %v", code, err)
			return
		}
		result.UPCItemDB = info
	}()

	wg.Wait()
	return result
}

// BestResult prefers OpenProductFacts over UPCItemDB, provided the entry
// carries a non-empty name. OpenProductFacts has better regional coverage for
// the stores this product targets, so the precedence is fixed.
func (s *barcodeService) BestResult(result domain.BarcodeResult) *domain.ProductInfo {
	if usable(result.OpenProductFacts) {
		return result.OpenProductFacts
	}
	if usable(result.UPCItemDB) {
		return result.UPCItemDB
	}
	return nil
}

func usable(info *domain.ProductInfo) bool {
	return info != nil && info.Name != nil && *info.Name != ""
}

func (s *barcodeService) Lookup(ctx context.Context, userID string, storeID string, code string) (domain.LookupBarcodeResponse, error) {
	if !IsValid(code) {
		return domain.LookupBarcodeResponse{}, domain.ErrInvalidBarcode
	}

	result := s.Resolve(ctx, code)
	best := s.BestResult(result)

	s.recordScan(ctx, userID, storeID, strings.TrimSpace(code), result, best)

	return domain.LookupBarcodeResponse{
		Barcode: strings.TrimSpace(code),
		Result:  result,
		Best:    best,
	}, nil
}

func (s *barcodeService) GetScanHistory(ctx context.Context, userID string, page, limit int) ([]*entities.BarcodeScan, int64, error) {
	return s.scanRepository.GetScans(ctx, userID, page, limit)
}

// recordScan is best-effort; the lookup result is returned even when the
// audit write fails.
func (s *barcodeService) recordScan(ctx context.Context, userID, storeID, code string, result domain.BarcodeResult, best *domain.ProductInfo) {
	if s.scanRepository == nil {
		return
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	scan := &entities.BarcodeScan{
		ID:             uuid.New(),
		UserID:         userUUID,
		Barcode:        code,
		MatchedOPF:     result.OpenProductFacts != nil,
		MatchedUPCItem: result.UPCItemDB != nil,
	}
	if storeID != "" {
		if storeUUID, err := uuid.Parse(storeID); err == nil {
			scan.StoreID = &storeUUID
		}
	}
	if best != nil {
		scan.SelectedSource = best.Source
		if best.Name != nil {
			scan.ResolvedProduct = *best.Name
		}
	}

	if err := s.scanRepository.RecordScan(ctx, scan); err != nil {
		log.Printf("[Barcode] failed to record scan for %s: %v", code, err)
	}
}
