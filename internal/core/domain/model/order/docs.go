// Package order provides the Order aggregate ("commande") and its status
// lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding money, contact details, owner, the
//     optional courier and the line items
//   - Status: waiting, paid, loading, delivered, rejected
//   - Code: the human readable identifier, "CM" followed by 8 upper-case hex digits
//   - TransitionMode: the per-actor whitelist of target statuses
//
// Key business rules:
//   - New orders start in waiting with a freshly generated code
//   - The code never changes once the order exists
//   - Status changes are checked against a flat whitelist per mode, not a
//     forward-only graph: staff may move a delivered order back to waiting
//   - A courier moving an order to loading becomes its courier; the last
//     claim wins, there is no compare-and-swap on the courier field
package order
