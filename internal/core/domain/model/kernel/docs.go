// Package kernel holds the value objects shared by every aggregate of the
// order service. At the moment that is UUID, the identity type of orders,
// users, vendors and catalog items.
package kernel
