// Package cart implements the Cart aggregate, the mutable basket a customer
// fills before checkout.
//
// Rules enforced here:
//   - a customer has at most one cart, bound to a single restaurant
//   - every item references a menu item of that restaurant
//   - adding a menu item that is already present merges quantities
//   - an item whose quantity would drop to zero or below is removed
//   - ItemCount and TotalAmount are recomputed after every mutation from
//     the quantities and the current menu-item prices
//
// A cart with no items must not be persisted; callers check IsEmpty after a
// mutation and delete the cart instead of saving it.
package cart
