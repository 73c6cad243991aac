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
	"github.com/lbeckmann/cardvault/gen/ent/cardscan"
	"github.com/lbeckmann/cardvault/gen/ent/contact"
	"github.com/lbeckmann/cardvault/gen/ent/extractjob"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// CardScanCreate is the builder for creating a CardScan entity.
type CardScanCreate struct {
	config
	mutation *CardScanMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *CardScanCreate) SetProfileID(v uuid.UUID) *CardScanCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *CardScanCreate) SetContactID(v uuid.UUID) *CardScanCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *CardScanCreate) SetNillableContactID(v *uuid.UUID) *CardScanCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CardScanCreate) SetSource(v string) *CardScanCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *CardScanCreate) SetOcrText(v string) *CardScanCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *CardScanCreate) SetNillableOcrText(v *string) *CardScanCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetQrPayload sets the "qr_payload" field.
func (_c *CardScanCreate) SetQrPayload(v string) *CardScanCreate {
	_c.mutation.SetQrPayload(v)
	return _c
}

// SetNillableQrPayload sets the "qr_payload" field if the given value is not nil.
func (_c *CardScanCreate) SetNillableQrPayload(v *string) *CardScanCreate {
	if v != nil {
		_c.SetQrPayload(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *CardScanCreate) SetContentHash(v []byte) *CardScanCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *CardScanCreate) SetCapturedAt(v time.Time) *CardScanCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *CardScanCreate) SetNillableCapturedAt(v *time.Time) *CardScanCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardScanCreate) SetID(v uuid.UUID) *CardScanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CardScanCreate) SetNillableID(v *uuid.UUID) *CardScanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CardScanCreate) SetProfile(v *Profile) *CardScanCreate {
	return _c.SetProfileID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *CardScanCreate) SetContact(v *Contact) *CardScanCreate {
	return _c.SetContactID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *CardScanCreate) AddJobIDs(ids ...uuid.UUID) *CardScanCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *CardScanCreate) AddJobs(v ...*ExtractJob) *CardScanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the CardScanMutation object of the builder.
func (_c *CardScanCreate) Mutation() *CardScanMutation {
	return _c.mutation
}

// Save creates the CardScan in the database.
func (_c *CardScanCreate) Save(ctx context.Context) (*CardScan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardScanCreate) SaveX(ctx context.Context) *CardScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardScanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardScanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardScanCreate) defaults() {
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := cardscan.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cardscan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardScanCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "CardScan.profile_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CardScan.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := cardscan.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "CardScan.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "CardScan.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := cardscan.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "CardScan.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "CardScan.captured_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "CardScan.profile"`)}
	}
	return nil
}

func (_c *CardScanCreate) sqlSave(ctx context.Context) (*CardScan, error) {
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

func (_c *CardScanCreate) createSpec() (*CardScan, *sqlgraph.CreateSpec) {
	var (
		_node = &CardScan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardscan.Table, sqlgraph.NewFieldSpec(cardscan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(cardscan.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(cardscan.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.QrPayload(); ok {
		_spec.SetField(cardscan.FieldQrPayload, field.TypeString, value)
		_node.QrPayload = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(cardscan.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(cardscan.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
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
		_node.ContactID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardScanCreateBulk is the builder for creating many CardScan entities in bulk.
type CardScanCreateBulk struct {
	config
	err      error
	builders []*CardScanCreate
}

// Save creates the CardScan entities in the database.
func (_c *CardScanCreateBulk) Save(ctx context.Context) ([]*CardScan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardScan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardScanMutation)
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
func (_c *CardScanCreateBulk) SaveX(ctx context.Context) []*CardScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardScanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardScanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
