// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Provider is the predicate function for provider builders.
type Provider func(*sql.Selector)

// ProviderAvailability is the predicate function for provideravailability builders.
type ProviderAvailability func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
