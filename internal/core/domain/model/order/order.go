package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrOrderAlreadyDelivered = errs.NewConflictError("order already delivered")
	ErrOrderAlreadyRouted    = errs.NewConflictError("order is already assigned to a route")
	ErrSameOriginDestination = errs.NewValueIsInvalidErrorWithCause(
		"destination city",
		errors.New("origin and destination cities must differ"),
	)
)

// Order is the aggregate root for a shipment. It owns the package, the two
// city references, the destination address and the lifecycle status.
//
// Invariants:
//   - user id, origin and destination city ids are positive
//   - origin and destination cities differ
//   - package dimensions are strictly positive (see kernel.Package)
//   - once routed the route id never changes
//   - once delivered the status and delivered-at never change
type Order struct {
	id                    int64
	code                  string
	userID                int64
	pkg                   kernel.Package
	productType           string
	originCityID          int64
	destinationCityID     int64
	destinationAddress    string
	status                Status
	estimatedDeliveryTime *time.Time
	deliveredAt           *time.Time
	routeID               *int64
	createdAt             time.Time

	isConstructed bool
}

// NewOrder creates a pending order with no code and no route. The id is
// assigned by the repository on insert.
//
// Example:
//
//	pkg, _ := kernel.NewPackage(2, 30, 20, 10)
//	o, err := order.NewOrder(userID, pkg, "electronics", 1, 2, "Calle 10 # 5-51")
//	if err != nil {
//	    return err
//	}
//	_ = o.SetCode("X7K2PQ")
func NewOrder(
	userID int64,
	pkg kernel.Package,
	productType string,
	originCityID, destinationCityID int64,
	destinationAddress string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setPackage(pkg),
		o.setCities(originCityID, destinationCityID),
		o.setDestinationAddress(destinationAddress),
	); err != nil {
		return nil, err
	}
	o.productType = strings.TrimSpace(productType)

	return o, nil
}

// Record carries the persisted state of an order. It is the input of
// RestoreOrder and is only meant for repositories and cache codecs.
type Record struct {
	ID                    int64
	Code                  string
	UserID                int64
	Package               kernel.Package
	ProductType           string
	OriginCityID          int64
	DestinationCityID     int64
	DestinationAddress    string
	Status                Status
	EstimatedDeliveryTime *time.Time
	DeliveredAt           *time.Time
	RouteID               *int64
	CreatedAt             time.Time
}

// RestoreOrder rebuilds an order from storage. Stored rows are trusted for
// business rules that may have changed since insert (address format, city
// pairing) but ids, package and status are still checked.
func RestoreOrder(r Record) (*Order, error) {
	o := &Order{
		code:                  r.Code,
		productType:           r.ProductType,
		originCityID:          r.OriginCityID,
		destinationCityID:     r.DestinationCityID,
		destinationAddress:    r.DestinationAddress,
		estimatedDeliveryTime: r.EstimatedDeliveryTime,
		deliveredAt:           r.DeliveredAt,
		routeID:               r.RouteID,
		createdAt:             r.CreatedAt,
		isConstructed:         true,
	}

	if r.ID <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("order id", r.ID, 1, "∞")
	}
	o.id = r.ID

	if err := errors.Join(
		o.setUserID(r.UserID),
		o.setPackage(r.Package),
		r.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = r.Status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsValid reports whether the order satisfies the minimum data rules:
// positive owner and city ids, positive package dimensions and a status.
func (o *Order) IsValid() bool {
	if o == nil {
		return false
	}
	return o.userID > 0 &&
		o.pkg.Weight() > 0 &&
		o.pkg.Width() > 0 &&
		o.pkg.Height() > 0 &&
		o.pkg.Length() > 0 &&
		o.originCityID > 0 &&
		o.destinationCityID > 0 &&
		strings.TrimSpace(string(o.status)) != ""
}

func (o *Order) ID() int64                         { return o.id }
func (o *Order) Code() string                      { return o.code }
func (o *Order) UserID() int64                     { return o.userID }
func (o *Order) Package() kernel.Package           { return o.pkg }
func (o *Order) ProductType() string               { return o.productType }
func (o *Order) OriginCityID() int64               { return o.originCityID }
func (o *Order) DestinationCityID() int64          { return o.destinationCityID }
func (o *Order) DestinationAddress() string        { return o.destinationAddress }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) EstimatedDeliveryTime() *time.Time { return o.estimatedDeliveryTime }
func (o *Order) DeliveredAt() *time.Time           { return o.deliveredAt }
func (o *Order) RouteID() *int64                   { return o.routeID }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }

func (o *Order) IsRouted() bool {
	return o.routeID != nil
}

// SetCode attaches the business key. It may only be set once, before the
// order is persisted.
func (o *Order) SetCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	if o.code != "" {
		return errs.NewValueIsInvalidErrorWithCause("order code", fmt.Errorf("code already set to %q", o.code))
	}
	o.code = code
	return nil
}

// ServesCities reports whether the order travels exactly between the given
// origin and destination.
func (o *Order) ServesCities(originCityID, destinationCityID int64) bool {
	return o.originCityID == originCityID && o.destinationCityID == destinationCityID
}

// AssignToRoute puts the order in transit on the given route. The estimated
// delivery time is the route's expected finish and may be nil.
func (o *Order) AssignToRoute(routeID int64, estimatedDelivery *time.Time) error {
	if routeID <= 0 {
		return errs.NewValueIsOutOfRangeError("route id", routeID, 1, "∞")
	}
	if o.routeID != nil {
		return ErrOrderAlreadyRouted
	}

	next, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = next
	o.routeID = &routeID
	o.estimatedDeliveryTime = estimatedDelivery
	return nil
}

// Deliver marks the order delivered at the given instant. A second call
// fails with ErrOrderAlreadyDelivered and leaves the order untouched.
func (o *Order) Deliver(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivered at")
	}

	next, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = next
	o.deliveredAt = &at
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("user id", fmt.Errorf("%d is not a valid user id", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setPackage(pkg kernel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setCities(originCityID, destinationCityID int64) error {
	if originCityID <= 0 {
		return errs.NewValueIsOutOfRangeError("origin city id", originCityID, 1, "∞")
	}
	if destinationCityID <= 0 {
		return errs.NewValueIsOutOfRangeError("destination city id", destinationCityID, 1, "∞")
	}
	if originCityID == destinationCityID {
		return ErrSameOriginDestination
	}
	o.originCityID = originCityID
	o.destinationCityID = destinationCityID
	return nil
}

func (o *Order) setDestinationAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("destination address")
	}
	o.destinationAddress = address
	return nil
}
