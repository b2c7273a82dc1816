// Package product implements the Product aggregate of the marketplace. A
// product is a producer's registered good: the thing a reverse auction is
// opened for. Products are never deleted; they are retired by status.
package product

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDetailsAreRequired is returned when creating a product without details.
	ErrDetailsAreRequired = errs.NewValueIsRequiredError("details")
	// ErrQuantityIsRequired is returned when creating a product without a quantity descriptor.
	ErrQuantityIsRequired = errs.NewValueIsRequiredError("quantity")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrProductAlreadyAuctioned is returned when linking an auction to a product
	// that already has an active one.
	ErrProductAlreadyAuctioned = errs.NewStateConflictError("product already has an active auction")
)

// Product is the aggregate root for a registered good.
//
// Invariants:
//   - id is a positive, never-reused sequential identifier
//   - name, details and quantity are non-empty
//   - unit price is non-negative (zero is a legal explicit price)
//   - linkedAuctionID is non-zero iff exactly one Active auction references
//     the product; completion keeps the link, cancellation clears it
type Product struct {
	id          kernel.EntityID
	producer    kernel.UUID
	name        string
	quantity    string
	details     string
	unitPrice   kernel.Money
	status      Status
	createdAt   time.Time
	lastUpdated time.Time

	linkedAuctionID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewProduct registers a new product owned by producer. The product starts
// Active with no linked auction, and both timestamps set to now.
func NewProduct(
	id kernel.EntityID,
	producer kernel.UUID,
	name, quantity, details string,
	unitPrice kernel.Money,
	now time.Time,
) (*Product, error) {
	p := &Product{
		status:      Active,
		createdAt:   now,
		lastUpdated: now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setProducer(producer),
		p.setName(name),
		p.setQuantity(quantity),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	p.unitPrice = unitPrice
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.EntityID,
	producer kernel.UUID,
	name, quantity, details string,
	unitPrice kernel.Money,
	status Status,
	createdAt, lastUpdated time.Time,
	linkedAuctionID kernel.EntityID,
) (*Product, error) {
	p, err := NewProduct(id, producer, name, quantity, details, unitPrice, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.lastUpdated = lastUpdated
	p.linkedAuctionID = linkedAuctionID
	return p, nil
}

// Validate ensures the product was created via a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's sequential identifier.
func (p *Product) ID() kernel.EntityID {
	return p.id
}

// Producer returns the owning producer's identity.
func (p *Product) Producer() kernel.UUID {
	return p.producer
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Quantity returns the free-text quantity descriptor.
func (p *Product) Quantity() string {
	return p.quantity
}

// Details returns the free-text product details.
func (p *Product) Details() string {
	return p.details
}

// UnitPrice returns the listed unit price.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Status returns the current listing status.
func (p *Product) Status() Status {
	return p.status
}

// CreatedAt returns the registration time.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// LastUpdated returns the time of the last mutation.
func (p *Product) LastUpdated() time.Time {
	return p.lastUpdated
}

// LinkedAuctionID returns the id of the Active auction referencing this
// product, or the zero id when there is none.
func (p *Product) LinkedAuctionID() kernel.EntityID {
	return p.linkedAuctionID
}

// IsOwnedBy reports whether the principal owns this product.
func (p *Product) IsOwnedBy(principal kernel.UUID) bool {
	return p.producer.IsEqual(principal)
}

// Update overwrites the mutable listing fields. Empty quantity or details
// mean "leave unchanged"; the price is always overwritten because zero is a
// legal explicit value. This asymmetry mirrors the external contract and is
// kept deliberately.
func (p *Product) Update(quantity string, unitPrice kernel.Money, details string, now time.Time) {
	if quantity != "" {
		p.quantity = quantity
	}
	if details != "" {
		p.details = details
	}
	p.unitPrice = unitPrice
	p.lastUpdated = now
}

// ChangeStatus sets the listing status. Every transition is legal: a recall
// must be reachable from any state.
func (p *Product) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	p.status = newStatus
	p.lastUpdated = now
	return nil
}

// LinkAuction records the Active auction opened for this product. A product
// may reference at most one active auction at a time.
func (p *Product) LinkAuction(auctionID kernel.EntityID, now time.Time) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	if !p.linkedAuctionID.IsZero() {
		return ErrProductAlreadyAuctioned
	}

	p.linkedAuctionID = auctionID
	p.lastUpdated = now
	return nil
}

// UnlinkAuction clears the auction link. Called on auction cancellation
// only; completion keeps the link as a "already resolved" marker.
func (p *Product) UnlinkAuction(now time.Time) {
	p.linkedAuctionID = kernel.NoEntityID()
	p.lastUpdated = now
}

func (p *Product) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setProducer(producer kernel.UUID) error {
	if err := producer.Validate(); err != nil {
		return err
	}
	p.producer = producer
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity string) error {
	if quantity == "" {
		return ErrQuantityIsRequired
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}
	p.details = details
	return nil
}
