// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
