// Package user models the people involved in an order: customers, couriers
// and staff. Only what the order lifecycle needs is kept here: phone, role,
// notification language and push device token.
package user
