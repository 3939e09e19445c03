package domain

// Actor is the authenticated caller as resolved by the identity layer.
type Actor struct {
	Id       int64
	Username string
	IsStaff  bool
}

// CanCreateProduct only staff accounts may register a funding product.
func CanCreateProduct(u Actor) error {
	if !u.IsStaff {
		return NewAuthorization("Only staff users can register a product.")
	}
	return nil
}

// CanModifyProduct ownership check, independent of staff status.
func CanModifyProduct(p Product, u Actor) error {
	if p.OwnerId != u.Id {
		return NewAuthorization("You do not have permission to modify this product.")
	}
	return nil
}

// CanDeleteProduct ownership check, independent of staff status.
func CanDeleteProduct(p Product, u Actor) error {
	if p.OwnerId != u.Id {
		return NewAuthorization("You do not have permission to delete this product.")
	}
	return nil
}

// CanPledge any authenticated user may pledge.
func CanPledge(u Actor) error {
	if u.Id == 0 {
		return NewAuthorization("Authentication required.")
	}
	return nil
}
