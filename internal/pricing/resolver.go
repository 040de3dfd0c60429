package pricing

import (
	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
)

// Resolve finds the contract covering a supplier/location pair. The first
// exact match wins; contract dates are not checked against today. A nil
// result with ok=false means either an incomplete selection or a spot case,
// which the caller tells apart by whether both ids are set.
func Resolve(supplierID, locationID uuid.UUID, contracts []model.Contract) (*model.Contract, bool) {
	if supplierID == uuid.Nil || locationID == uuid.Nil {
		return nil, false
	}
	for i := range contracts {
		if contracts[i].SupplierID == supplierID && contracts[i].LocationID == locationID {
			return &contracts[i], true
		}
	}
	return nil, false
}
