// Code generated by ent, DO NOT EDIT.

package cardscan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldProfileID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldContactID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldSource, v))
}

// OcrText applies equality check predicate on the "ocr_text" field. It's identical to OcrTextEQ.
func OcrText(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldOcrText, v))
}

// QrPayload applies equality check predicate on the "qr_payload" field. It's identical to QrPayloadEQ.
func QrPayload(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldQrPayload, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldContentHash, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldCapturedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldProfileID, vs...))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...uuid.UUID) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldNotNull(FieldContactID))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContainsFold(FieldSource, v))
}

// OcrTextEQ applies the EQ predicate on the "ocr_text" field.
func OcrTextEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldOcrText, v))
}

// OcrTextNEQ applies the NEQ predicate on the "ocr_text" field.
func OcrTextNEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldOcrText, v))
}

// OcrTextIn applies the In predicate on the "ocr_text" field.
func OcrTextIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldOcrText, vs...))
}

// OcrTextNotIn applies the NotIn predicate on the "ocr_text" field.
func OcrTextNotIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldOcrText, vs...))
}

// OcrTextGT applies the GT predicate on the "ocr_text" field.
func OcrTextGT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldOcrText, v))
}

// OcrTextGTE applies the GTE predicate on the "ocr_text" field.
func OcrTextGTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldOcrText, v))
}

// OcrTextLT applies the LT predicate on the "ocr_text" field.
func OcrTextLT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldOcrText, v))
}

// OcrTextLTE applies the LTE predicate on the "ocr_text" field.
func OcrTextLTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldOcrText, v))
}

// OcrTextContains applies the Contains predicate on the "ocr_text" field.
func OcrTextContains(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContains(FieldOcrText, v))
}

// OcrTextHasPrefix applies the HasPrefix predicate on the "ocr_text" field.
func OcrTextHasPrefix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasPrefix(FieldOcrText, v))
}

// OcrTextHasSuffix applies the HasSuffix predicate on the "ocr_text" field.
func OcrTextHasSuffix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasSuffix(FieldOcrText, v))
}

// OcrTextIsNil applies the IsNil predicate on the "ocr_text" field.
func OcrTextIsNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldIsNull(FieldOcrText))
}

// OcrTextNotNil applies the NotNil predicate on the "ocr_text" field.
func OcrTextNotNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldNotNull(FieldOcrText))
}

// OcrTextEqualFold applies the EqualFold predicate on the "ocr_text" field.
func OcrTextEqualFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEqualFold(FieldOcrText, v))
}

// OcrTextContainsFold applies the ContainsFold predicate on the "ocr_text" field.
func OcrTextContainsFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContainsFold(FieldOcrText, v))
}

// QrPayloadEQ applies the EQ predicate on the "qr_payload" field.
func QrPayloadEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldQrPayload, v))
}

// QrPayloadNEQ applies the NEQ predicate on the "qr_payload" field.
func QrPayloadNEQ(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldQrPayload, v))
}

// QrPayloadIn applies the In predicate on the "qr_payload" field.
func QrPayloadIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldQrPayload, vs...))
}

// QrPayloadNotIn applies the NotIn predicate on the "qr_payload" field.
func QrPayloadNotIn(vs ...string) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldQrPayload, vs...))
}

// QrPayloadGT applies the GT predicate on the "qr_payload" field.
func QrPayloadGT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldQrPayload, v))
}

// QrPayloadGTE applies the GTE predicate on the "qr_payload" field.
func QrPayloadGTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldQrPayload, v))
}

// QrPayloadLT applies the LT predicate on the "qr_payload" field.
func QrPayloadLT(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldQrPayload, v))
}

// QrPayloadLTE applies the LTE predicate on the "qr_payload" field.
func QrPayloadLTE(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldQrPayload, v))
}

// QrPayloadContains applies the Contains predicate on the "qr_payload" field.
func QrPayloadContains(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContains(FieldQrPayload, v))
}

// QrPayloadHasPrefix applies the HasPrefix predicate on the "qr_payload" field.
func QrPayloadHasPrefix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasPrefix(FieldQrPayload, v))
}

// QrPayloadHasSuffix applies the HasSuffix predicate on the "qr_payload" field.
func QrPayloadHasSuffix(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldHasSuffix(FieldQrPayload, v))
}

// QrPayloadIsNil applies the IsNil predicate on the "qr_payload" field.
func QrPayloadIsNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldIsNull(FieldQrPayload))
}

// QrPayloadNotNil applies the NotNil predicate on the "qr_payload" field.
func QrPayloadNotNil() predicate.CardScan {
	return predicate.CardScan(sql.FieldNotNull(FieldQrPayload))
}

// QrPayloadEqualFold applies the EqualFold predicate on the "qr_payload" field.
func QrPayloadEqualFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldEqualFold(FieldQrPayload, v))
}

// QrPayloadContainsFold applies the ContainsFold predicate on the "qr_payload" field.
func QrPayloadContainsFold(v string) predicate.CardScan {
	return predicate.CardScan(sql.FieldContainsFold(FieldQrPayload, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldContentHash, v))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.CardScan {
	return predicate.CardScan(sql.FieldLTE(FieldCapturedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.CardScan {
	return predicate.CardScan(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardScan) predicate.CardScan {
	return predicate.CardScan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardScan) predicate.CardScan {
	return predicate.CardScan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardScan) predicate.CardScan {
	return predicate.CardScan(sql.NotPredicates(p))
}
