// Package order provides the Order aggregate created at checkout.
//
// An Order is built once from a cart snapshot. Its financial and item fields
// (TotalAmount, Items with their name and price copies, payment references)
// never change afterwards; prices are not re-read from the catalog. Only the
// status, the assigned agent and the delivery timestamp move, following
// Status: PLACED -> OUT_FOR_DELIVERY -> DELIVERED.
//
// The order refers to its customer, restaurant and agent by identifier only;
// relations are resolved through repositories, never through embedded
// pointers.
package order
