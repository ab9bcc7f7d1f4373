// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/entry"
	"github.com/abhisek/quizdeck/ent/predicate"
)

// EntryUpdate is the builder for updating Entry entities.
type EntryUpdate struct {
	config
	hooks    []Hook
	mutation *EntryMutation
}

// Where appends a list predicates to the EntryUpdate builder.
func (_u *EntryUpdate) Where(ps ...predicate.Entry) *EntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *EntryUpdate) SetKey(v string) *EntryUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *EntryUpdate) SetNillableKey(v *string) *EntryUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *EntryUpdate) SetKind(v string) *EntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EntryUpdate) SetNillableKind(v *string) *EntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EntryUpdate) SetPayload(v json.RawMessage) *EntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *EntryUpdate) AppendPayload(v json.RawMessage) *EntryUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *EntryUpdate) SetStoredAt(v int64) *EntryUpdate {
	_u.mutation.ResetStoredAt()
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *EntryUpdate) SetNillableStoredAt(v *int64) *EntryUpdate {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// AddStoredAt adds value to the "stored_at" field.
func (_u *EntryUpdate) AddStoredAt(v int64) *EntryUpdate {
	_u.mutation.AddStoredAt(v)
	return _u
}

// Mutation returns the EntryMutation object of the builder.
func (_u *EntryUpdate) Mutation() *EntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntryUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := entry.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Entry.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := entry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Entry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *EntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entry.Table, entry.Columns, sqlgraph.NewFieldSpec(entry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(entry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(entry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entry.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(entry.FieldStoredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStoredAt(); ok {
		_spec.AddField(entry.FieldStoredAt, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntryUpdateOne is the builder for updating a single Entry entity.
type EntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntryMutation
}

// SetKey sets the "key" field.
func (_u *EntryUpdateOne) SetKey(v string) *EntryUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *EntryUpdateOne) SetNillableKey(v *string) *EntryUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *EntryUpdateOne) SetKind(v string) *EntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EntryUpdateOne) SetNillableKind(v *string) *EntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EntryUpdateOne) SetPayload(v json.RawMessage) *EntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *EntryUpdateOne) AppendPayload(v json.RawMessage) *EntryUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetStoredAt sets the "stored_at" field.
func (_u *EntryUpdateOne) SetStoredAt(v int64) *EntryUpdateOne {
	_u.mutation.ResetStoredAt()
	_u.mutation.SetStoredAt(v)
	return _u
}

// SetNillableStoredAt sets the "stored_at" field if the given value is not nil.
func (_u *EntryUpdateOne) SetNillableStoredAt(v *int64) *EntryUpdateOne {
	if v != nil {
		_u.SetStoredAt(*v)
	}
	return _u
}

// AddStoredAt adds value to the "stored_at" field.
func (_u *EntryUpdateOne) AddStoredAt(v int64) *EntryUpdateOne {
	_u.mutation.AddStoredAt(v)
	return _u
}

// Mutation returns the EntryMutation object of the builder.
func (_u *EntryUpdateOne) Mutation() *EntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntryUpdate builder.
func (_u *EntryUpdateOne) Where(ps ...predicate.Entry) *EntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntryUpdateOne) Select(field string, fields ...string) *EntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entry entity.
func (_u *EntryUpdateOne) Save(ctx context.Context) (*Entry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntryUpdateOne) SaveX(ctx context.Context) *Entry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntryUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := entry.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Entry.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := entry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Entry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *EntryUpdateOne) sqlSave(ctx context.Context) (_node *Entry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entry.Table, entry.Columns, sqlgraph.NewFieldSpec(entry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entry.FieldID)
		for _, f := range fields {
			if !entry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entry.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(entry.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(entry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entry.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.StoredAt(); ok {
		_spec.SetField(entry.FieldStoredAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStoredAt(); ok {
		_spec.AddField(entry.FieldStoredAt, field.TypeInt64, value)
	}
	_node = &Entry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
