// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Market is the predicate function for market builders.
type Market func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Promotion is the predicate function for promotion builders.
type Promotion func(*sql.Selector)
