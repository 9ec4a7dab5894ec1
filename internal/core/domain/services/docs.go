// Package services holds domain logic that spans several aggregates.
//
// The package includes:
//   - ResolveStatusText: maps an order status and a user language to the
//     notification title and body sent to the order owner
//   - NewOrderText: the message sent to staff when an order is placed
//
// Both are pure lookups over fixed tables; no I/O happens here.
package services
