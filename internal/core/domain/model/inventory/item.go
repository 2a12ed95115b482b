// Package inventory contains the pre-reserved waybill-number pool. Numbers
// are carved from partner-owned ranges, optionally pinned to one company
// under the partner ("market" items have no company and are usable by any
// of them), and consumed exactly once at booking time.
package inventory

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrAlreadyUsed is returned when consuming a waybill number that was
	// already drawn. Used numbers are never recycled.
	ErrAlreadyUsed = errors.New("inventory item is already used")

	// ErrRangeTooLarge is returned when a range allocation would expand to
	// more candidate numbers than the configured ceiling allows.
	ErrRangeTooLarge = errors.New("inventory range exceeds the allocation ceiling")

	// ErrDuplicateNumber is returned when reserving a waybill number that
	// is already present in the pool, regardless of scope. Range allocation
	// treats it as a skip, not a failure.
	ErrDuplicateNumber = errors.New("waybill number is already reserved")
)

// Item is one reserved waybill number in the allocator pool.
// The waybill number is unique across the whole allocator, independent of
// partner or company scope.
type Item struct {
	id            kernel.UUID
	waybillNumber string
	partnerCode   string
	companyCode   string
	isUsed        bool

	isConstructed bool
}

// NewItem reserves a fresh, unused waybill number.
// An empty companyCode means "market": any company under the partner may
// draw the number.
func NewItem(id kernel.UUID, waybillNumber, partnerCode, companyCode string) (*Item, error) {
	item := &Item{
		companyCode:   companyCode,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setWaybillNumber(waybillNumber),
		item.setPartnerCode(partnerCode),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence.
func RestoreItem(id kernel.UUID, waybillNumber, partnerCode, companyCode string, isUsed bool) (*Item, error) {
	item, err := NewItem(id, waybillNumber, partnerCode, companyCode)
	if err != nil {
		return nil, err
	}

	item.isUsed = isUsed
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// WaybillNumber returns the reserved number.
func (i *Item) WaybillNumber() string {
	return i.waybillNumber
}

// PartnerCode returns the owning partner.
func (i *Item) PartnerCode() string {
	return i.partnerCode
}

// CompanyCode returns the pinned company, or empty for a market item.
func (i *Item) CompanyCode() string {
	return i.companyCode
}

// IsMarket reports whether the number is usable by any company under the
// partner.
func (i *Item) IsMarket() bool {
	return i.companyCode == ""
}

// IsUsed reports whether the number was already drawn.
func (i *Item) IsUsed() bool {
	return i.isUsed
}

// Consume marks the number as drawn. Fails with ErrAlreadyUsed on a second
// consumption; the flip is one-way.
func (i *Item) Consume() error {
	if i.isUsed {
		return fmt.Errorf("%w: %s", ErrAlreadyUsed, i.waybillNumber)
	}

	i.isUsed = true
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setWaybillNumber(waybillNumber string) error {
	if waybillNumber == "" {
		return errs.NewValueIsRequiredError("waybillNumber")
	}
	i.waybillNumber = waybillNumber
	return nil
}

func (i *Item) setPartnerCode(partnerCode string) error {
	if partnerCode == "" {
		return errs.NewValueIsRequiredError("partnerCode")
	}
	i.partnerCode = partnerCode
	return nil
}
