package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

type SessionState string

const (
	StateEditing    SessionState = "EDITING"
	StateSubmitting SessionState = "SUBMITTING"
	StateSummary    SessionState = "SUMMARY"
	StateClosed     SessionState = "CLOSED"
)

var ErrSessionNotEditable = errors.New("session is not accepting edits")

// SaveFunc is the persistence boundary. It receives the finalized tariff
// exactly once per successful submit; id assignment happens behind it.
type SaveFunc func(tariff model.Tariff) error

// Session drives one tariff form from first edit to save. Reference data is
// injected read-only at construction; the session never queries anything.
type Session struct {
	contracts []model.Contract
	onSave    SaveFunc
	now       time.Time

	state    SessionState
	draft    model.Tariff
	contract *model.Contract
}

func NewSession(contracts []model.Contract, now time.Time, onSave SaveFunc) *Session {
	s := &Session{
		contracts: contracts,
		onSave:    onSave,
		now:       now,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.state = StateEditing
	s.contract = nil
	s.draft = model.Tariff{
		BasePrice:    decimal.Zero,
		Differential: decimal.Zero,
		Markup:       decimal.Zero,
		StartDate:    s.now,
		EndDate:      s.now,
	}
}

func (s *Session) State() SessionState       { return s.state }
func (s *Session) Draft() model.Tariff       { return s.draft }
func (s *Session) Contract() *model.Contract { return s.contract }

// SetSupplier records the supplier selection and re-resolves the contract,
// which may overwrite previously edited dates.
func (s *Session) SetSupplier(id uuid.UUID) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.SupplierID = id
	s.resolveContract()
	return nil
}

// SetLocation records the location selection and re-resolves the contract.
func (s *Session) SetLocation(id uuid.UUID) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.LocationID = id
	s.resolveContract()
	return nil
}

func (s *Session) resolveContract() {
	if s.draft.SupplierID == uuid.Nil || s.draft.LocationID == uuid.Nil {
		s.contract = nil
		s.draft.IsSpotTariff = false
		return
	}

	contract, found := Resolve(s.draft.SupplierID, s.draft.LocationID, s.contracts)
	if found {
		s.contract = contract
		s.draft.IsSpotTariff = false
		s.draft.ContractRef = &contract.ContractRef
		s.draft.StartDate = contract.StartDate
		s.draft.EndDate = MaxEndDate(contract.StartDate, contract.PriceChangeFrequency)
		return
	}

	s.contract = nil
	s.draft.IsSpotTariff = true
	s.draft.ContractRef = nil
	s.draft.ReplacementSupplierID = nil
}

func (s *Session) SetReplacementSupplier(id uuid.UUID) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.ReplacementSupplierID = &id
	return nil
}

func (s *Session) SetBasePrice(raw string) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.BasePrice = CoercePrice(raw)
	return nil
}

func (s *Session) SetDifferential(raw string) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.Differential = CoercePrice(raw)
	return nil
}

func (s *Session) SetMarkup(raw string) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.Markup = CoercePrice(raw)
	return nil
}

func (s *Session) SetStartDate(date time.Time) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.StartDate = date
	return nil
}

func (s *Session) SetEndDate(date time.Time) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.EndDate = date
	return nil
}

// AddPerLiterPrice appends a custom per-liter line item and returns its id.
func (s *Session) AddPerLiterPrice(description string, price decimal.Decimal) (uuid.UUID, error) {
	if s.state != StateEditing {
		return uuid.Nil, ErrSessionNotEditable
	}
	item := model.CustomPrice{ID: uuid.New(), Description: description, Price: price}
	s.draft.PerLiterPrices = append(s.draft.PerLiterPrices, item)
	return item.ID, nil
}

func (s *Session) RemovePerLiterPrice(id uuid.UUID) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.PerLiterPrices = removeCustomPrice(s.draft.PerLiterPrices, id)
	return nil
}

// AddPerUpliftmentPrice appends a custom per-upliftment line item.
func (s *Session) AddPerUpliftmentPrice(description string, price decimal.Decimal) (uuid.UUID, error) {
	if s.state != StateEditing {
		return uuid.Nil, ErrSessionNotEditable
	}
	item := model.CustomPrice{ID: uuid.New(), Description: description, Price: price}
	s.draft.PerUpliftmentPrices = append(s.draft.PerUpliftmentPrices, item)
	return item.ID, nil
}

func (s *Session) RemovePerUpliftmentPrice(id uuid.UUID) error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.draft.PerUpliftmentPrices = removeCustomPrice(s.draft.PerUpliftmentPrices, id)
	return nil
}

// TotalPerLiter returns the current composed price of the draft.
func (s *Session) TotalPerLiter() decimal.Decimal {
	return TotalPerLiter(&s.draft)
}

// Submit validates the draft and, on success, hands it to the save callback
// and moves to the summary view. A validation failure returns the session to
// editing with the draft untouched.
func (s *Session) Submit() error {
	if s.state != StateEditing {
		return ErrSessionNotEditable
	}
	s.state = StateSubmitting

	if err := ValidateDateRange(&s.draft, s.contract); err != nil {
		s.state = StateEditing
		return err
	}
	if s.draft.IsSpotTariff && s.draft.ReplacementSupplierID == nil {
		s.state = StateEditing
		return ErrReplacementRequired
	}

	s.draft.Status = model.TariffStatusActive
	if err := s.onSave(s.draft); err != nil {
		s.state = StateEditing
		return err
	}

	s.state = StateSummary
	return nil
}

// Reset starts a fresh form after a successful save ("create another").
func (s *Session) Reset() error {
	if s.state != StateSummary {
		return ErrSessionNotEditable
	}
	s.reset()
	return nil
}

// Close dismisses the session from any state.
func (s *Session) Close() {
	s.state = StateClosed
}
