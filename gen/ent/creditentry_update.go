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
	"github.com/lbeckmann/cardvault/gen/ent/creditentry"
	"github.com/lbeckmann/cardvault/gen/ent/predicate"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CreditEntryUpdate is the builder for updating CreditEntry entities.
type CreditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CreditEntryMutation
}

// Where appends a list predicates to the CreditEntryUpdate builder.
func (_u *CreditEntryUpdate) Where(ps ...predicate.CreditEntry) *CreditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CreditEntryUpdate) SetProfileID(v uuid.UUID) *CreditEntryUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CreditEntryUpdate) SetNillableProfileID(v *uuid.UUID) *CreditEntryUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetScanID sets the "scan_id" field.
func (_u *CreditEntryUpdate) SetScanID(v uuid.UUID) *CreditEntryUpdate {
	_u.mutation.SetScanID(v)
	return _u
}

// SetNillableScanID sets the "scan_id" field if the given value is not nil.
func (_u *CreditEntryUpdate) SetNillableScanID(v *uuid.UUID) *CreditEntryUpdate {
	if v != nil {
		_u.SetScanID(*v)
	}
	return _u
}

// ClearScanID clears the value of the "scan_id" field.
func (_u *CreditEntryUpdate) ClearScanID() *CreditEntryUpdate {
	_u.mutation.ClearScanID()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *CreditEntryUpdate) SetDelta(v int) *CreditEntryUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *CreditEntryUpdate) SetNillableDelta(v *int) *CreditEntryUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *CreditEntryUpdate) AddDelta(v int) *CreditEntryUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditEntryUpdate) SetReason(v string) *CreditEntryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditEntryUpdate) SetNillableReason(v *string) *CreditEntryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreditEntryUpdate) SetCreatedAt(v time.Time) *CreditEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreditEntryUpdate) SetNillableCreatedAt(v *time.Time) *CreditEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CreditEntryUpdate) SetProfile(v *Profile) *CreditEntryUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the CreditEntryMutation object of the builder.
func (_u *CreditEntryUpdate) Mutation() *CreditEntryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CreditEntryUpdate) ClearProfile() *CreditEntryUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditEntryUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := creditentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CreditEntry.reason": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditEntry.profile"`)
	}
	return nil
}

func (_u *CreditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditentry.Table, creditentry.Columns, sqlgraph.NewFieldSpec(creditentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScanID(); ok {
		_spec.SetField(creditentry.FieldScanID, field.TypeUUID, value)
	}
	if _u.mutation.ScanIDCleared() {
		_spec.ClearField(creditentry.FieldScanID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(creditentry.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(creditentry.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(creditentry.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creditentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditentry.ProfileTable,
			Columns: []string{creditentry.ProfileColumn},
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
			Table:   creditentry.ProfileTable,
			Columns: []string{creditentry.ProfileColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditEntryUpdateOne is the builder for updating a single CreditEntry entity.
type CreditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditEntryMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CreditEntryUpdateOne) SetProfileID(v uuid.UUID) *CreditEntryUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CreditEntryUpdateOne) SetNillableProfileID(v *uuid.UUID) *CreditEntryUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetScanID sets the "scan_id" field.
func (_u *CreditEntryUpdateOne) SetScanID(v uuid.UUID) *CreditEntryUpdateOne {
	_u.mutation.SetScanID(v)
	return _u
}

// SetNillableScanID sets the "scan_id" field if the given value is not nil.
func (_u *CreditEntryUpdateOne) SetNillableScanID(v *uuid.UUID) *CreditEntryUpdateOne {
	if v != nil {
		_u.SetScanID(*v)
	}
	return _u
}

// ClearScanID clears the value of the "scan_id" field.
func (_u *CreditEntryUpdateOne) ClearScanID() *CreditEntryUpdateOne {
	_u.mutation.ClearScanID()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *CreditEntryUpdateOne) SetDelta(v int) *CreditEntryUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *CreditEntryUpdateOne) SetNillableDelta(v *int) *CreditEntryUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *CreditEntryUpdateOne) AddDelta(v int) *CreditEntryUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *CreditEntryUpdateOne) SetReason(v string) *CreditEntryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *CreditEntryUpdateOne) SetNillableReason(v *string) *CreditEntryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CreditEntryUpdateOne) SetCreatedAt(v time.Time) *CreditEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CreditEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *CreditEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CreditEntryUpdateOne) SetProfile(v *Profile) *CreditEntryUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the CreditEntryMutation object of the builder.
func (_u *CreditEntryUpdateOne) Mutation() *CreditEntryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CreditEntryUpdateOne) ClearProfile() *CreditEntryUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the CreditEntryUpdate builder.
func (_u *CreditEntryUpdateOne) Where(ps ...predicate.CreditEntry) *CreditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditEntryUpdateOne) Select(field string, fields ...string) *CreditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditEntry entity.
func (_u *CreditEntryUpdateOne) Save(ctx context.Context) (*CreditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditEntryUpdateOne) SaveX(ctx context.Context) *CreditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := creditentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CreditEntry.reason": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditEntry.profile"`)
	}
	return nil
}

func (_u *CreditEntryUpdateOne) sqlSave(ctx context.Context) (_node *CreditEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditentry.Table, creditentry.Columns, sqlgraph.NewFieldSpec(creditentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditentry.FieldID)
		for _, f := range fields {
			if !creditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditentry.FieldID {
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
	if value, ok := _u.mutation.ScanID(); ok {
		_spec.SetField(creditentry.FieldScanID, field.TypeUUID, value)
	}
	if _u.mutation.ScanIDCleared() {
		_spec.ClearField(creditentry.FieldScanID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(creditentry.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(creditentry.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(creditentry.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(creditentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditentry.ProfileTable,
			Columns: []string{creditentry.ProfileColumn},
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
			Table:   creditentry.ProfileTable,
			Columns: []string{creditentry.ProfileColumn},
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
	_node = &CreditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
