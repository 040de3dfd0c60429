package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

func newTestSession(t *testing.T) (*Session, *[]model.Tariff) {
	t.Helper()
	var saved []model.Tariff
	session := NewSession(testContracts(), date(2023, time.May, 10), func(tariff model.Tariff) error {
		saved = append(saved, tariff)
		return nil
	})
	return session, &saved
}

func TestSessionContractResolution(t *testing.T) {
	session, _ := newTestSession(t)

	if err := session.SetSupplier(supplierShell); err != nil {
		t.Fatal(err)
	}
	if session.Contract() != nil {
		t.Error("contract must not resolve before both selections are made")
	}
	if session.Draft().IsSpotTariff {
		t.Error("incomplete selection must not flag a spot tariff")
	}

	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}
	draft := session.Draft()
	if session.Contract() == nil {
		t.Fatal("expected contract for shell at CPT")
	}
	if draft.IsSpotTariff {
		t.Error("contract-backed tariff flagged as spot")
	}
	if draft.ContractRef == nil || *draft.ContractRef != "SH-CPT-2023" {
		t.Errorf("contract ref not copied onto draft: %v", draft.ContractRef)
	}
	if !draft.StartDate.Equal(date(2023, time.January, 1)) {
		t.Errorf("start date not taken from contract: %s", draft.StartDate)
	}
	// Weekly contract: end pre-fills to start + 7 days.
	if !draft.EndDate.Equal(date(2023, time.January, 8)) {
		t.Errorf("end date not pre-filled to window maximum: %s", draft.EndDate)
	}
}

func TestSessionSpotResolution(t *testing.T) {
	session, _ := newTestSession(t)

	if err := session.SetSupplier(supplierEngen); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}
	if err := session.SetReplacementSupplier(supplierBP); err != nil {
		t.Fatal(err)
	}

	draft := session.Draft()
	if !draft.IsSpotTariff {
		t.Fatal("expected spot tariff for uncontracted pair")
	}
	if draft.ContractRef != nil {
		t.Error("spot tariff must carry no contract ref")
	}

	// Changing the selection re-resolves and wipes the replacement choice.
	if err := session.SetLocation(locationJNB); err != nil {
		t.Fatal(err)
	}
	if session.Draft().ReplacementSupplierID != nil {
		t.Error("replacement supplier must reset on re-resolution")
	}
}

func TestSessionResolutionOverwritesEditedDates(t *testing.T) {
	session, _ := newTestSession(t)

	if err := session.SetStartDate(date(2023, time.June, 1)); err != nil {
		t.Fatal(err)
	}
	if err := session.SetEndDate(date(2023, time.June, 5)); err != nil {
		t.Fatal(err)
	}
	if err := session.SetSupplier(supplierShell); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}

	if !session.Draft().StartDate.Equal(date(2023, time.January, 1)) {
		t.Error("resolution must overwrite edited dates with contract dates")
	}
}

func TestSessionSubmitSpotTariff(t *testing.T) {
	session, saved := newTestSession(t)

	if err := session.SetSupplier(supplierEngen); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}
	if err := session.SetBasePrice("18.90"); err != nil {
		t.Fatal(err)
	}

	err := session.Submit()
	if !errors.Is(err, ErrReplacementRequired) {
		t.Fatalf("spot submit without replacement supplier: got %v, want ErrReplacementRequired", err)
	}
	if session.State() != StateEditing {
		t.Errorf("rejected submit must return to editing, state %s", session.State())
	}
	if len(*saved) != 0 {
		t.Fatal("nothing may be saved on a rejected submit")
	}

	if err := session.SetReplacementSupplier(supplierBP); err != nil {
		t.Fatal(err)
	}
	if err := session.Submit(); err != nil {
		t.Fatalf("submit with replacement supplier: %v", err)
	}
	if session.State() != StateSummary {
		t.Errorf("state after save = %s, want %s", session.State(), StateSummary)
	}

	if len(*saved) != 1 {
		t.Fatalf("expected one saved tariff, got %d", len(*saved))
	}
	tariff := (*saved)[0]
	if !tariff.IsSpotTariff {
		t.Error("saved tariff must be spot")
	}
	if tariff.ContractRef != nil {
		t.Error("saved spot tariff must have no contract ref")
	}
	if tariff.Status != model.TariffStatusActive {
		t.Errorf("saved tariff status = %s, want %s", tariff.Status, model.TariffStatusActive)
	}
}

func TestSessionSubmitRejectsInvalidWindow(t *testing.T) {
	session, saved := newTestSession(t)

	if err := session.SetSupplier(supplierShell); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}
	// Stretch the pre-filled weekly window past the seven-day cap.
	if err := session.SetEndDate(date(2023, time.January, 15)); err != nil {
		t.Fatal(err)
	}

	err := session.Submit()
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("got %v, want ErrInvalidDateRange", err)
	}
	if len(*saved) != 0 {
		t.Fatal("no partial save on validation failure")
	}
}

func TestSessionCustomPriceLifecycle(t *testing.T) {
	session, _ := newTestSession(t)

	first, err := session.AddPerLiterPrice("Throughput fee", decimal.RequireFromString("0.12"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := session.AddPerLiterPrice("Into-plane fee", decimal.RequireFromString("0.08")); err != nil {
		t.Fatal(err)
	}
	if _, err := session.AddPerUpliftmentPrice("Callout charge", decimal.RequireFromString("350.00")); err != nil {
		t.Fatal(err)
	}

	totalBefore := session.TotalPerLiter()

	if err := session.RemovePerLiterPrice(first); err != nil {
		t.Fatal(err)
	}

	draft := session.Draft()
	if len(draft.PerLiterPrices) != 1 {
		t.Errorf("per-liter items = %d, want 1", len(draft.PerLiterPrices))
	}
	if draft.PerLiterPrices[0].Description != "Into-plane fee" {
		t.Errorf("wrong item removed, kept %q", draft.PerLiterPrices[0].Description)
	}
	if len(draft.PerUpliftmentPrices) != 1 {
		t.Errorf("per-upliftment items = %d, want 1", len(draft.PerUpliftmentPrices))
	}
	if !session.TotalPerLiter().Equal(totalBefore) {
		t.Error("custom price changes must not move the per-liter total")
	}
}

func TestSessionResetAndClose(t *testing.T) {
	session, _ := newTestSession(t)

	if err := session.Reset(); !errors.Is(err, ErrSessionNotEditable) {
		t.Errorf("reset from editing: got %v, want ErrSessionNotEditable", err)
	}

	if err := session.SetSupplier(supplierEngen); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationJNB); err != nil {
		t.Fatal(err)
	}
	if err := session.SetReplacementSupplier(supplierShell); err != nil {
		t.Fatal(err)
	}
	if err := session.Submit(); err != nil {
		t.Fatal(err)
	}

	if err := session.Reset(); err != nil {
		t.Fatal(err)
	}
	if session.State() != StateEditing {
		t.Errorf("state after reset = %s, want %s", session.State(), StateEditing)
	}
	draft := session.Draft()
	if draft.SupplierID != uuid.Nil || draft.IsSpotTariff {
		t.Error("reset must produce a pristine draft")
	}

	session.Close()
	if err := session.SetBasePrice("1.00"); !errors.Is(err, ErrSessionNotEditable) {
		t.Errorf("edit after close: got %v, want ErrSessionNotEditable", err)
	}
}

func TestSessionSaveFailureReturnsToEditing(t *testing.T) {
	saveErr := errors.New("storage unavailable")
	session := NewSession(testContracts(), date(2023, time.May, 10), func(model.Tariff) error {
		return saveErr
	})

	if err := session.SetSupplier(supplierShell); err != nil {
		t.Fatal(err)
	}
	if err := session.SetLocation(locationCPT); err != nil {
		t.Fatal(err)
	}

	if err := session.Submit(); !errors.Is(err, saveErr) {
		t.Fatalf("got %v, want save error", err)
	}
	if session.State() != StateEditing {
		t.Errorf("state after failed save = %s, want %s", session.State(), StateEditing)
	}
}
