// Package basket computes the next basket state to persist for a requested
// change. The functions here are pure: they never call out and never mutate
// their inputs. Callers hand the produced write operation to the basket
// service client and, on success, overwrite the cached basket with the
// server's returned representation, which is authoritative for computed
// fields such as line ids and price snapshots.
package basket

import "github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"

// OpKind discriminates basket write operations.
type OpKind string

const (
	// OpCreate creates a new basket via POST /api/v1/baskets.
	OpCreate OpKind = "create"
	// OpUpdate replaces an existing basket via PUT /api/v1/baskets/{id}.
	OpUpdate OpKind = "update"
	// OpDelete removes the basket entirely via DELETE /api/v1/baskets/{id}.
	OpDelete OpKind = "delete"
)

// WriteOp is the payload to persist. For OpCreate and OpUpdate, Basket holds
// the desired next state; for OpDelete only Basket.ID is meaningful.
type WriteOp struct {
	Kind   OpKind
	Basket domain.Basket
}

// MinQuantity is the smallest quantity a basket line may hold. Requests below
// it are clamped, never rejected.
const MinQuantity = 1

// ReconcileAdd computes the write needed to add quantity units of catalogID.
//
// With no existing basket it produces a create operation holding a single
// line. With an existing basket it produces an update: a line already
// referencing catalogID has its quantity increased by the requested amount
// (additive, not increment-by-one), otherwise a new line is appended. All
// other lines are carried over unchanged.
func ReconcileAdd(existing *domain.Basket, catalogID string, quantity int) WriteOp {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}

	if existing == nil {
		return WriteOp{
			Kind: OpCreate,
			Basket: domain.Basket{
				Items: []domain.BasketItem{{CatalogID: catalogID, Quantity: quantity}},
			},
		}
	}

	next := copyBasket(*existing)
	merged := false
	for i, item := range next.Items {
		if item.CatalogID == catalogID {
			next.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		next.Items = append(next.Items, domain.BasketItem{CatalogID: catalogID, Quantity: quantity})
	}

	return WriteOp{Kind: OpUpdate, Basket: next}
}

// ReconcileRemove computes the update that drops the line with the given id.
// Removing an id that is not present yields an update identical to the
// current basket.
func ReconcileRemove(b domain.Basket, itemID string) WriteOp {
	next := b
	next.Items = make([]domain.BasketItem, 0, len(b.Items))
	for _, item := range b.Items {
		if item.ID != itemID {
			next.Items = append(next.Items, item)
		}
	}
	return WriteOp{Kind: OpUpdate, Basket: next}
}

// ReconcileClear computes the operation for an explicit removal of the whole
// basket.
func ReconcileClear(b domain.Basket) WriteOp {
	return WriteOp{Kind: OpDelete, Basket: domain.Basket{ID: b.ID}}
}

// ReconcileSetQuantity computes the update that sets the quantity of the line
// with the given id. Quantities below MinQuantity are clamped, so a decrement
// from 1 stays at 1. Lines other than the targeted one are unchanged.
func ReconcileSetQuantity(b domain.Basket, itemID string, quantity int) WriteOp {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}

	next := copyBasket(b)
	for i, item := range next.Items {
		if item.ID == itemID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return WriteOp{Kind: OpUpdate, Basket: next}
}

func copyBasket(b domain.Basket) domain.Basket {
	b.Items = append([]domain.BasketItem(nil), b.Items...)
	return b
}
