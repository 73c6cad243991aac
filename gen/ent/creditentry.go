// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/gen/ent/creditentry"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CreditEntry is the model entity for the CreditEntry schema.
type CreditEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID *uuid.UUID `json:"scan_id,omitempty"`
	// Delta holds the value of the "delta" field.
	Delta int `json:"delta,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditEntryQuery when eager-loading is set.
	Edges        CreditEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditEntryEdges holds the relations/edges for other nodes in the graph.
type CreditEntryEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditEntryEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditentry.FieldScanID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case creditentry.FieldDelta:
			values[i] = new(sql.NullInt64)
		case creditentry.FieldReason:
			values[i] = new(sql.NullString)
		case creditentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case creditentry.FieldID, creditentry.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditEntry fields.
func (_m *CreditEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case creditentry.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case creditentry.FieldScanID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = new(uuid.UUID)
				*_m.ScanID = *value.S.(*uuid.UUID)
			}
		case creditentry.FieldDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value.Valid {
				_m.Delta = int(value.Int64)
			}
		case creditentry.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case creditentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CreditEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the CreditEntry entity.
func (_m *CreditEntry) QueryProfile() *ProfileQuery {
	return NewCreditEntryClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this CreditEntry.
// Note that you need to call CreditEntry.Unwrap() before calling this method if this CreditEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditEntry) Update() *CreditEntryUpdateOne {
	return NewCreditEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditEntry) Unwrap() *CreditEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CreditEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.ScanID; v != nil {
		builder.WriteString("scan_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditEntries is a parsable slice of CreditEntry.
type CreditEntries []*CreditEntry
