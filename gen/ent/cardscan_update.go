// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/gen/ent/cardscan"
	"github.com/lbeckmann/cardvault/gen/ent/contact"
	"github.com/lbeckmann/cardvault/gen/ent/extractjob"
	"github.com/lbeckmann/cardvault/gen/ent/predicate"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CardScanUpdate is the builder for updating CardScan entities.
type CardScanUpdate struct {
	config
	hooks    []Hook
	mutation *CardScanMutation
}

// Where appends a list predicates to the CardScanUpdate builder.
func (_u *CardScanUpdate) Where(ps ...predicate.CardScan) *CardScanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CardScanUpdate) SetProfileID(v uuid.UUID) *CardScanUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableProfileID(v *uuid.UUID) *CardScanUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *CardScanUpdate) SetContactID(v uuid.UUID) *CardScanUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableContactID(v *uuid.UUID) *CardScanUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *CardScanUpdate) ClearContactID() *CardScanUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetSource sets the "source" field.
func (_u *CardScanUpdate) SetSource(v string) *CardScanUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableSource(v *string) *CardScanUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *CardScanUpdate) SetOcrText(v string) *CardScanUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableOcrText(v *string) *CardScanUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *CardScanUpdate) ClearOcrText() *CardScanUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetQrPayload sets the "qr_payload" field.
func (_u *CardScanUpdate) SetQrPayload(v string) *CardScanUpdate {
	_u.mutation.SetQrPayload(v)
	return _u
}

// SetNillableQrPayload sets the "qr_payload" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableQrPayload(v *string) *CardScanUpdate {
	if v != nil {
		_u.SetQrPayload(*v)
	}
	return _u
}

// ClearQrPayload clears the value of the "qr_payload" field.
func (_u *CardScanUpdate) ClearQrPayload() *CardScanUpdate {
	_u.mutation.ClearQrPayload()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CardScanUpdate) SetContentHash(v []byte) *CardScanUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *CardScanUpdate) SetCapturedAt(v time.Time) *CardScanUpdate {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *CardScanUpdate) SetNillableCapturedAt(v *time.Time) *CardScanUpdate {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CardScanUpdate) SetProfile(v *Profile) *CardScanUpdate {
	return _u.SetProfileID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *CardScanUpdate) SetContact(v *Contact) *CardScanUpdate {
	return _u.SetContactID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *CardScanUpdate) AddJobIDs(ids ...uuid.UUID) *CardScanUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *CardScanUpdate) AddJobs(v ...*ExtractJob) *CardScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CardScanMutation object of the builder.
func (_u *CardScanUpdate) Mutation() *CardScanMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CardScanUpdate) ClearProfile() *CardScanUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *CardScanUpdate) ClearContact() *CardScanUpdate {
	_u.mutation.ClearContact()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *CardScanUpdate) ClearJobs() *CardScanUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *CardScanUpdate) RemoveJobIDs(ids ...uuid.UUID) *CardScanUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *CardScanUpdate) RemoveJobs(v ...*ExtractJob) *CardScanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardScanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardScanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardScanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardScanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardScanUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := cardscan.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CardScan.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := cardscan.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "CardScan.content_hash": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardScan.profile"`)
	}
	return nil
}

func (_u *CardScanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardscan.Table, cardscan.Columns, sqlgraph.NewFieldSpec(cardscan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(cardscan.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(cardscan.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(cardscan.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.QrPayload(); ok {
		_spec.SetField(cardscan.FieldQrPayload, field.TypeString, value)
	}
	if _u.mutation.QrPayloadCleared() {
		_spec.ClearField(cardscan.FieldQrPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(cardscan.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(cardscan.FieldCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ProfileTable,
			Columns: []string{cardscan.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ProfileTable,
			Columns: []string{cardscan.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ContactTable,
			Columns: []string{cardscan.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ContactTable,
			Columns: []string{cardscan.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardScanUpdateOne is the builder for updating a single CardScan entity.
type CardScanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardScanMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CardScanUpdateOne) SetProfileID(v uuid.UUID) *CardScanUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableProfileID(v *uuid.UUID) *CardScanUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *CardScanUpdateOne) SetContactID(v uuid.UUID) *CardScanUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableContactID(v *uuid.UUID) *CardScanUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *CardScanUpdateOne) ClearContactID() *CardScanUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetSource sets the "source" field.
func (_u *CardScanUpdateOne) SetSource(v string) *CardScanUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableSource(v *string) *CardScanUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *CardScanUpdateOne) SetOcrText(v string) *CardScanUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableOcrText(v *string) *CardScanUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *CardScanUpdateOne) ClearOcrText() *CardScanUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetQrPayload sets the "qr_payload" field.
func (_u *CardScanUpdateOne) SetQrPayload(v string) *CardScanUpdateOne {
	_u.mutation.SetQrPayload(v)
	return _u
}

// SetNillableQrPayload sets the "qr_payload" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableQrPayload(v *string) *CardScanUpdateOne {
	if v != nil {
		_u.SetQrPayload(*v)
	}
	return _u
}

// ClearQrPayload clears the value of the "qr_payload" field.
func (_u *CardScanUpdateOne) ClearQrPayload() *CardScanUpdateOne {
	_u.mutation.ClearQrPayload()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *CardScanUpdateOne) SetContentHash(v []byte) *CardScanUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *CardScanUpdateOne) SetCapturedAt(v time.Time) *CardScanUpdateOne {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *CardScanUpdateOne) SetNillableCapturedAt(v *time.Time) *CardScanUpdateOne {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CardScanUpdateOne) SetProfile(v *Profile) *CardScanUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *CardScanUpdateOne) SetContact(v *Contact) *CardScanUpdateOne {
	return _u.SetContactID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *CardScanUpdateOne) AddJobIDs(ids ...uuid.UUID) *CardScanUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *CardScanUpdateOne) AddJobs(v ...*ExtractJob) *CardScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CardScanMutation object of the builder.
func (_u *CardScanUpdateOne) Mutation() *CardScanMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CardScanUpdateOne) ClearProfile() *CardScanUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *CardScanUpdateOne) ClearContact() *CardScanUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *CardScanUpdateOne) ClearJobs() *CardScanUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *CardScanUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *CardScanUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *CardScanUpdateOne) RemoveJobs(v ...*ExtractJob) *CardScanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the CardScanUpdate builder.
func (_u *CardScanUpdateOne) Where(ps ...predicate.CardScan) *CardScanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardScanUpdateOne) Select(field string, fields ...string) *CardScanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardScan entity.
func (_u *CardScanUpdateOne) Save(ctx context.Context) (*CardScan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardScanUpdateOne) SaveX(ctx context.Context) *CardScan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardScanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardScanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardScanUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := cardscan.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CardScan.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := cardscan.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "CardScan.content_hash": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardScan.profile"`)
	}
	return nil
}

func (_u *CardScanUpdateOne) sqlSave(ctx context.Context) (_node *CardScan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardscan.Table, cardscan.Columns, sqlgraph.NewFieldSpec(cardscan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardScan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardscan.FieldID)
		for _, f := range fields {
			if !cardscan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardscan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(cardscan.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(cardscan.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(cardscan.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.QrPayload(); ok {
		_spec.SetField(cardscan.FieldQrPayload, field.TypeString, value)
	}
	if _u.mutation.QrPayloadCleared() {
		_spec.ClearField(cardscan.FieldQrPayload, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(cardscan.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(cardscan.FieldCapturedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ProfileTable,
			Columns: []string{cardscan.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ProfileTable,
			Columns: []string{cardscan.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ContactTable,
			Columns: []string{cardscan.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardscan.ContactTable,
			Columns: []string{cardscan.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cardscan.JobsTable,
			Columns: []string{cardscan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardScan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
