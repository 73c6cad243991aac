// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CardScan is the predicate function for cardscan builders.
type CardScan func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// CreditEntry is the predicate function for creditentry builders.
type CreditEntry func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
