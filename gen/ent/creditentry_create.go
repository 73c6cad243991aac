// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/gen/ent/creditentry"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CreditEntryCreate is the builder for creating a CreditEntry entity.
type CreditEntryCreate struct {
	config
	mutation *CreditEntryMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *CreditEntryCreate) SetProfileID(v uuid.UUID) *CreditEntryCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetScanID sets the "scan_id" field.
func (_c *CreditEntryCreate) SetScanID(v uuid.UUID) *CreditEntryCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetNillableScanID sets the "scan_id" field if the given value is not nil.
func (_c *CreditEntryCreate) SetNillableScanID(v *uuid.UUID) *CreditEntryCreate {
	if v != nil {
		_c.SetScanID(*v)
	}
	return _c
}

// SetDelta sets the "delta" field.
func (_c *CreditEntryCreate) SetDelta(v int) *CreditEntryCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CreditEntryCreate) SetReason(v string) *CreditEntryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditEntryCreate) SetCreatedAt(v time.Time) *CreditEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditEntryCreate) SetNillableCreatedAt(v *time.Time) *CreditEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditEntryCreate) SetID(v uuid.UUID) *CreditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CreditEntryCreate) SetNillableID(v *uuid.UUID) *CreditEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CreditEntryCreate) SetProfile(v *Profile) *CreditEntryCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the CreditEntryMutation object of the builder.
func (_c *CreditEntryCreate) Mutation() *CreditEntryMutation {
	return _c.mutation
}

// Save creates the CreditEntry in the database.
func (_c *CreditEntryCreate) Save(ctx context.Context) (*CreditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditEntryCreate) SaveX(ctx context.Context) *CreditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := creditentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := creditentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditEntryCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "CreditEntry.profile_id"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "CreditEntry.delta"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "CreditEntry.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := creditentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "CreditEntry.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditEntry.created_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "CreditEntry.profile"`)}
	}
	return nil
}

func (_c *CreditEntryCreate) sqlSave(ctx context.Context) (*CreditEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditEntryCreate) createSpec() (*CreditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditentry.Table, sqlgraph.NewFieldSpec(creditentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ScanID(); ok {
		_spec.SetField(creditentry.FieldScanID, field.TypeUUID, value)
		_node.ScanID = &value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(creditentry.FieldDelta, field.TypeInt, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(creditentry.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(creditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CreditEntryCreateBulk is the builder for creating many CreditEntry entities in bulk.
type CreditEntryCreateBulk struct {
	config
	err      error
	builders []*CreditEntryCreate
}

// Save creates the CreditEntry entities in the database.
func (_c *CreditEntryCreateBulk) Save(ctx context.Context) ([]*CreditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CreditEntryCreateBulk) SaveX(ctx context.Context) []*CreditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
