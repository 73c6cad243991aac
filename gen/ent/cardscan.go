// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/gen/ent/cardscan"
	"github.com/lbeckmann/cardvault/gen/ent/contact"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CardScan is the model entity for the CardScan schema.
type CardScan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// ContactID holds the value of the "contact_id" field.
	ContactID *uuid.UUID `json:"contact_id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// OcrText holds the value of the "ocr_text" field.
	OcrText *string `json:"ocr_text,omitempty"`
	// QrPayload holds the value of the "qr_payload" field.
	QrPayload *string `json:"qr_payload,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// CapturedAt holds the value of the "captured_at" field.
	CapturedAt time.Time `json:"captured_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardScanQuery when eager-loading is set.
	Edges        CardScanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CardScanEdges holds the relations/edges for other nodes in the graph.
type CardScanEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardScanEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardScanEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e CardScanEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardScan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardscan.FieldContactID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case cardscan.FieldContentHash:
			values[i] = new([]byte)
		case cardscan.FieldSource, cardscan.FieldOcrText, cardscan.FieldQrPayload:
			values[i] = new(sql.NullString)
		case cardscan.FieldCapturedAt:
			values[i] = new(sql.NullTime)
		case cardscan.FieldID, cardscan.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardScan fields.
func (_m *CardScan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardscan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cardscan.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case cardscan.FieldContactID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(uuid.UUID)
				*_m.ContactID = *value.S.(*uuid.UUID)
			}
		case cardscan.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case cardscan.FieldOcrText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_text", values[i])
			} else if value.Valid {
				_m.OcrText = new(string)
				*_m.OcrText = value.String
			}
		case cardscan.FieldQrPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field qr_payload", values[i])
			} else if value.Valid {
				_m.QrPayload = new(string)
				*_m.QrPayload = value.String
			}
		case cardscan.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case cardscan.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardScan.
// This includes values selected through modifiers, order, etc.
func (_m *CardScan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the CardScan entity.
func (_m *CardScan) QueryProfile() *ProfileQuery {
	return NewCardScanClient(_m.config).QueryProfile(_m)
}

// QueryContact queries the "contact" edge of the CardScan entity.
func (_m *CardScan) QueryContact() *ContactQuery {
	return NewCardScanClient(_m.config).QueryContact(_m)
}

// QueryJobs queries the "jobs" edge of the CardScan entity.
func (_m *CardScan) QueryJobs() *ExtractJobQuery {
	return NewCardScanClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this CardScan.
// Note that you need to call CardScan.Unwrap() before calling this method if this CardScan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardScan) Update() *CardScanUpdateOne {
	return NewCardScanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardScan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardScan) Unwrap() *CardScan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardScan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardScan) String() string {
	var builder strings.Builder
	builder.WriteString("CardScan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.OcrText; v != nil {
		builder.WriteString("ocr_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.QrPayload; v != nil {
		builder.WriteString("qr_payload=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardScans is a parsable slice of CardScan.
type CardScans []*CardScan
