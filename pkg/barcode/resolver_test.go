package barcode

import (
	"StockPilot-Backend/domain"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func opfServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func upcServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveBothSourcesMiss(t *testing.T) {
	t.Parallel()

	opf := opfServer(t, http.StatusOK, `{"status":0}`)
	upc := upcServer(t, http.StatusOK, `{"items":[]}`)
	svc := NewBarcodeService(nil, opf.URL, upc.URL, "")

	result := svc.Resolve(context.Background(), "12345678")
	if result.OpenProductFacts != nil || result.UPCItemDB != nil {
		t.Fatalf("expected no match from either source, got %+v", result)
	}
	if best := svc.BestResult(result); best != nil {
		t.Fatalf("expected no best result, got %+v", best)
	}
}

func TestResolvePrefersOpenProductFacts(t *testing.T) {
	t.Parallel()

	opf := opfServer(t, http.StatusOK, `{"status":1,"product":{"product_name":"Milk","brands":"MilkCo"}}`)
	upc := upcServer(t, http.StatusOK, `{"items":[{"title":"MilkCo Whole Milk"}]}`)
	svc := NewBarcodeService(nil, opf.URL, upc.URL, "")

	result := svc.Resolve(context.Background(), "4006381333931")
	best := svc.BestResult(result)
	if best == nil {
		t.Fatal("expected a best result")
	}
	if best.Source != domain.SourceOpenProductFacts {
		t.Fatalf("expected OpenProductFacts to win, got %s", best.Source)
	}
	if best.Name == nil || *best.Name != "Milk" {
		t.Fatalf("unexpected name: %v", best.Name)
	}
}

func TestResolveFallsBackToUPCItemDB(t *testing.T) {
	t.Parallel()

	// Known to OpenProductFacts but without a usable name.
	opf := opfServer(t, http.StatusOK, `{"status":1,"product":{"brands":"NoName Inc"}}`)
	upc := upcServer(t, http.StatusOK, `{"items":[{"title":"X","brand":"XCo"}]}`)
	svc := NewBarcodeService(nil, opf.URL, upc.URL, "")

	result := svc.Resolve(context.Background(), "036000291452")
	if result.OpenProductFacts == nil {
		t.Fatal("expected an OpenProductFacts entry, even without a name")
	}
	if result.OpenProductFacts.Name != nil {
		t.Fatalf("expected absent name, got %q", *result.OpenProductFacts.Name)
	}

	best := svc.BestResult(result)
	if best == nil || best.Source != domain.SourceUPCItemDB {
		t.Fatalf("expected UPCItemDB fallback, got %+v", best)
	}
}

func TestResolveSurvivesOneSourceFailing(t *testing.T) {
	t.Parallel()

	opf := opfServer(t, http.StatusInternalServerError, `boom`)
	upc := upcServer(t, http.StatusOK, `{"items":[{"title":"Survivor","category":"Snacks"}]}`)
	svc := NewBarcodeService(nil, opf.URL, upc.URL, "")

	result := svc.Resolve(context.Background(), "12345678")
	if result.OpenProductFacts != nil {
		t.Fatalf("expected no OpenProductFacts result on server error, got %+v", result.OpenProductFacts)
	}
	if result.UPCItemDB == nil || result.UPCItemDB.Name == nil || *result.UPCItemDB.Name != "Survivor" {
		t.Fatalf("expected UPCItemDB result to survive, got %+v", result.UPCItemDB)
	}
}

func TestResolveMapsOptionalFieldsAsAbsent(t *testing.T) {
	t.Parallel()

	opf := opfServer(t, http.StatusOK, `{"status":1,"product":{"product_name_en":"Oat Drink","product_name":"Havredryck","nutrition_grades":"b"}}`)
	upc := upcServer(t, http.StatusOK, `{"items":[]}`)
	svc := NewBarcodeService(nil, opf.URL, upc.URL, "")

	result := svc.Resolve(context.Background(), "7394376616161")
	info := result.OpenProductFacts
	if info == nil {
		t.Fatal("expected an OpenProductFacts result")
	}
	if info.Name == nil || *info.Name != "Oat Drink" {
		t.Fatalf("expected the English name to be preferred, got %v", info.Name)
	}
	if info.NutritionGrade == nil || *info.NutritionGrade != "b" {
		t.Fatalf("unexpected nutrition grade: %v", info.NutritionGrade)
	}
	if info.Brand != nil || info.Ingredients != nil || info.ImageURL != nil {
		t.Fatalf("expected unreported fields to stay absent, got %+v", info)
	}
}

func TestLookupRejectsInvalidBarcodeBeforeAnyRequest(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	svc := NewBarcodeService(nil, srv.URL, srv.URL, "")
	_, err := svc.Lookup(context.Background(), "11111111-2222-3333-4444-555555555555", "", "not-a-code")
	if !errors.Is(err, domain.ErrInvalidBarcode) {
		t.Fatalf("expected ErrInvalidBarcode, got %v", err)
	}
	if called {
		t.Fatal("expected no outbound request for an invalid barcode")
	}
}
