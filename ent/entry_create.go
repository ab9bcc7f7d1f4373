// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/entry"
)

// EntryCreate is the builder for creating a Entry entity.
type EntryCreate struct {
	config
	mutation *EntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *EntryCreate) SetKey(v string) *EntryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *EntryCreate) SetKind(v string) *EntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EntryCreate) SetPayload(v json.RawMessage) *EntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStoredAt sets the "stored_at" field.
func (_c *EntryCreate) SetStoredAt(v int64) *EntryCreate {
	_c.mutation.SetStoredAt(v)
	return _c
}

// Mutation returns the EntryMutation object of the builder.
func (_c *EntryCreate) Mutation() *EntryMutation {
	return _c.mutation
}

// Save creates the Entry in the database.
func (_c *EntryCreate) Save(ctx context.Context) (*Entry, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntryCreate) SaveX(ctx context.Context) *Entry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntryCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Entry.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := entry.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Entry.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Entry.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := entry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Entry.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Entry.payload"`)}
	}
	if _, ok := _c.mutation.StoredAt(); !ok {
		return &ValidationError{Name: "stored_at", err: errors.New(`ent: missing required field "Entry.stored_at"`)}
	}
	return nil
}

func (_c *EntryCreate) sqlSave(ctx context.Context) (*Entry, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntryCreate) createSpec() (*Entry, *sqlgraph.CreateSpec) {
	var (
		_node = &Entry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entry.Table, sqlgraph.NewFieldSpec(entry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(entry.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(entry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(entry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.StoredAt(); ok {
		_spec.SetField(entry.FieldStoredAt, field.TypeInt64, value)
		_node.StoredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entry.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntryUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *EntryCreate) OnConflict(opts ...sql.ConflictOption) *EntryUpsertOne {
	_c.conflict = opts
	return &EntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntryCreate) OnConflictColumns(columns ...string) *EntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntryUpsertOne{
		create: _c,
	}
}

type (
	// EntryUpsertOne is the builder for "upsert"-ing
	//  one Entry node.
	EntryUpsertOne struct {
		create *EntryCreate
	}

	// EntryUpsert is the "OnConflict" setter.
	EntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *EntryUpsert) SetKey(v string) *EntryUpsert {
	u.Set(entry.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EntryUpsert) UpdateKey() *EntryUpsert {
	u.SetExcluded(entry.FieldKey)
	return u
}

// SetKind sets the "kind" field.
func (u *EntryUpsert) SetKind(v string) *EntryUpsert {
	u.Set(entry.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *EntryUpsert) UpdateKind() *EntryUpsert {
	u.SetExcluded(entry.FieldKind)
	return u
}

// SetPayload sets the "payload" field.
func (u *EntryUpsert) SetPayload(v json.RawMessage) *EntryUpsert {
	u.Set(entry.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EntryUpsert) UpdatePayload() *EntryUpsert {
	u.SetExcluded(entry.FieldPayload)
	return u
}

// SetStoredAt sets the "stored_at" field.
func (u *EntryUpsert) SetStoredAt(v int64) *EntryUpsert {
	u.Set(entry.FieldStoredAt, v)
	return u
}

// UpdateStoredAt sets the "stored_at" field to the value that was provided on create.
func (u *EntryUpsert) UpdateStoredAt() *EntryUpsert {
	u.SetExcluded(entry.FieldStoredAt)
	return u
}

// AddStoredAt adds v to the "stored_at" field.
func (u *EntryUpsert) AddStoredAt(v int64) *EntryUpsert {
	u.Add(entry.FieldStoredAt, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Entry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntryUpsertOne) UpdateNewValues() *EntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntryUpsertOne) Ignore() *EntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntryUpsertOne) DoNothing() *EntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntryCreate.OnConflict
// documentation for more info.
func (u *EntryUpsertOne) Update(set func(*EntryUpsert)) *EntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *EntryUpsertOne) SetKey(v string) *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EntryUpsertOne) UpdateKey() *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateKey()
	})
}

// SetKind sets the "kind" field.
func (u *EntryUpsertOne) SetKind(v string) *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *EntryUpsertOne) UpdateKind() *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *EntryUpsertOne) SetPayload(v json.RawMessage) *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EntryUpsertOne) UpdatePayload() *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.UpdatePayload()
	})
}

// SetStoredAt sets the "stored_at" field.
func (u *EntryUpsertOne) SetStoredAt(v int64) *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.SetStoredAt(v)
	})
}

// AddStoredAt adds v to the "stored_at" field.
func (u *EntryUpsertOne) AddStoredAt(v int64) *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.AddStoredAt(v)
	})
}

// UpdateStoredAt sets the "stored_at" field to the value that was provided on create.
func (u *EntryUpsertOne) UpdateStoredAt() *EntryUpsertOne {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateStoredAt()
	})
}

// Exec executes the query.
func (u *EntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntryCreateBulk is the builder for creating many Entry entities in bulk.
type EntryCreateBulk struct {
	config
	err      error
	builders []*EntryCreate
	conflict []sql.ConflictOption
}

// Save creates the Entry entities in the database.
func (_c *EntryCreateBulk) Save(ctx context.Context) ([]*Entry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntryMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *EntryCreateBulk) SaveX(ctx context.Context) []*Entry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntryUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *EntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntryUpsertBulk {
	_c.conflict = opts
	return &EntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntryCreateBulk) OnConflictColumns(columns ...string) *EntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntryUpsertBulk{
		create: _c,
	}
}

// EntryUpsertBulk is the builder for "upsert"-ing
// a bulk of Entry nodes.
type EntryUpsertBulk struct {
	create *EntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Entry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntryUpsertBulk) UpdateNewValues() *EntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntryUpsertBulk) Ignore() *EntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntryUpsertBulk) DoNothing() *EntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntryCreateBulk.OnConflict
// documentation for more info.
func (u *EntryUpsertBulk) Update(set func(*EntryUpsert)) *EntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *EntryUpsertBulk) SetKey(v string) *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *EntryUpsertBulk) UpdateKey() *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateKey()
	})
}

// SetKind sets the "kind" field.
func (u *EntryUpsertBulk) SetKind(v string) *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *EntryUpsertBulk) UpdateKind() *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *EntryUpsertBulk) SetPayload(v json.RawMessage) *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EntryUpsertBulk) UpdatePayload() *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.UpdatePayload()
	})
}

// SetStoredAt sets the "stored_at" field.
func (u *EntryUpsertBulk) SetStoredAt(v int64) *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.SetStoredAt(v)
	})
}

// AddStoredAt adds v to the "stored_at" field.
func (u *EntryUpsertBulk) AddStoredAt(v int64) *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.AddStoredAt(v)
	})
}

// UpdateStoredAt sets the "stored_at" field to the value that was provided on create.
func (u *EntryUpsertBulk) UpdateStoredAt() *EntryUpsertBulk {
	return u.Update(func(s *EntryUpsert) {
		s.UpdateStoredAt()
	})
}

// Exec executes the query.
func (u *EntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
