package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
)

var (
	supplierShell = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	supplierBP    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	supplierEngen = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	locationCPT   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	locationJNB   = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func testContracts() []model.Contract {
	return []model.Contract{
		{
			ID:                   uuid.MustParse("dddddddd-0000-0000-0000-000000000001"),
			SupplierID:           supplierShell,
			LocationID:           locationCPT,
			ContractRef:          "SH-CPT-2023",
			StartDate:            date(2023, time.January, 1),
			EndDate:              date(2023, time.December, 31),
			PriceChangeFrequency: model.FrequencyWeekly,
		},
		{
			ID:                   uuid.MustParse("dddddddd-0000-0000-0000-000000000002"),
			SupplierID:           supplierBP,
			LocationID:           locationJNB,
			ContractRef:          "BP-JNB-2023",
			StartDate:            date(2023, time.January, 1),
			EndDate:              date(2023, time.December, 31),
			PriceChangeFrequency: model.FrequencyMonthly,
		},
	}
}

func TestResolve(t *testing.T) {
	contracts := testContracts()

	t.Run("finds contract for known pair", func(t *testing.T) {
		contract, ok := Resolve(supplierShell, locationCPT, contracts)
		if !ok {
			t.Fatal("expected contract to resolve")
		}
		if contract.ContractRef != "SH-CPT-2023" {
			t.Errorf("got contract %s, want SH-CPT-2023", contract.ContractRef)
		}
	})

	t.Run("no contract for unknown pair", func(t *testing.T) {
		if _, ok := Resolve(supplierEngen, locationCPT, contracts); ok {
			t.Error("expected no contract for engen at CPT")
		}
	})

	t.Run("crossed pair does not match", func(t *testing.T) {
		if _, ok := Resolve(supplierShell, locationJNB, contracts); ok {
			t.Error("supplier and location must both match the same contract")
		}
	})

	t.Run("nil supplier id resolves nothing", func(t *testing.T) {
		if _, ok := Resolve(uuid.Nil, locationCPT, contracts); ok {
			t.Error("expected no resolution without a supplier selection")
		}
	})

	t.Run("nil location id resolves nothing", func(t *testing.T) {
		if _, ok := Resolve(supplierShell, uuid.Nil, contracts); ok {
			t.Error("expected no resolution without a location selection")
		}
	})
}
