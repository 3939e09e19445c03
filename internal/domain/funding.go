package domain

import (
	"time"
)

// Funding is a single fixed-price pledge against a product.
type Funding struct {
	Id          int64
	UserId      int64
	ProductId   int64
	Price       int64
	FundingDate time.Time
}

// FundingRequest is the raw client intent; optional fields stay nil
// when the client did not send them.
type FundingRequest struct {
	ProductId int64
	Price     *int64
	UserId    *int64
}

// ValidateFundingRequest rejects requests that try to set
// server-controlled fields. It needs no product, so callers run it
// before the product lookup: a conflict wins even when the referenced
// product does not exist.
func ValidateFundingRequest(actor Actor, req FundingRequest) error {
	if err := CanPledge(actor); err != nil {
		return err
	}
	if req.Price != nil {
		return NewConflict("price", "price field is Product one_time_funding. Can't create")
	}
	if req.UserId != nil && *req.UserId != actor.Id {
		return NewConflict("user_id", "Can't funding with other's account")
	}
	return nil
}

// NewFunding derives a pledge from the referenced product. The price is
// always the product's current one_time_funding; a client-supplied
// price or a foreign user id is a conflict and creates nothing.
func NewFunding(actor Actor, req FundingRequest, product Product, now time.Time) (Funding, error) {
	if err := ValidateFundingRequest(actor, req); err != nil {
		return Funding{}, err
	}
	return Funding{
		UserId:      actor.Id,
		ProductId:   product.Id,
		Price:       product.OneTimeFunding,
		FundingDate: now,
	}, nil
}

// CanDeleteFunding a pledge may only be removed by the user who made it.
func CanDeleteFunding(f Funding, u Actor) error {
	if f.UserId != u.Id {
		return NewAuthorization("You do not have permission to delete this funding.")
	}
	return nil
}
