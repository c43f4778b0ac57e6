// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/google/uuid"
)

// OcrResultCreate is the builder for creating a OcrResult entity.
type OcrResultCreate struct {
	config
	mutation *OcrResultMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *OcrResultCreate) SetJobID(v uuid.UUID) *OcrResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTransactionDate sets the "transaction_date" field.
func (_c *OcrResultCreate) SetTransactionDate(v string) *OcrResultCreate {
	_c.mutation.SetTransactionDate(v)
	return _c
}

// SetAmountValue sets the "amount_value" field.
func (_c *OcrResultCreate) SetAmountValue(v int64) *OcrResultCreate {
	_c.mutation.SetAmountValue(v)
	return _c
}

// SetAmountCurrency sets the "amount_currency" field.
func (_c *OcrResultCreate) SetAmountCurrency(v string) *OcrResultCreate {
	_c.mutation.SetAmountCurrency(v)
	return _c
}

// SetNillableAmountCurrency sets the "amount_currency" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableAmountCurrency(v *string) *OcrResultCreate {
	if v != nil {
		_c.SetAmountCurrency(*v)
	}
	return _c
}

// SetCategoryCode sets the "category_code" field.
func (_c *OcrResultCreate) SetCategoryCode(v string) *OcrResultCreate {
	_c.mutation.SetCategoryCode(v)
	return _c
}

// SetCategoryName sets the "category_name" field.
func (_c *OcrResultCreate) SetCategoryName(v string) *OcrResultCreate {
	_c.mutation.SetCategoryName(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *OcrResultCreate) SetItems(v json.RawMessage) *OcrResultCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetMeta sets the "meta" field.
func (_c *OcrResultCreate) SetMeta(v json.RawMessage) *OcrResultCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetProcessingTime sets the "processing_time" field.
func (_c *OcrResultCreate) SetProcessingTime(v float64) *OcrResultCreate {
	_c.mutation.SetProcessingTime(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *OcrResultCreate) SetWordCount(v int) *OcrResultCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableWordCount(v *int) *OcrResultCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OcrResultCreate) SetCreatedAt(v time.Time) *OcrResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableCreatedAt(v *time.Time) *OcrResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OcrResultCreate) SetID(v uuid.UUID) *OcrResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OcrResultCreate) SetNillableID(v *uuid.UUID) *OcrResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the OcrJob entity.
func (_c *OcrResultCreate) SetJob(v *OcrJob) *OcrResultCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_c *OcrResultCreate) Mutation() *OcrResultMutation {
	return _c.mutation
}

// Save creates the OcrResult in the database.
func (_c *OcrResultCreate) Save(ctx context.Context) (*OcrResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OcrResultCreate) SaveX(ctx context.Context) *OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OcrResultCreate) defaults() {
	if _, ok := _c.mutation.AmountCurrency(); !ok {
		v := ocrresult.DefaultAmountCurrency
		_c.mutation.SetAmountCurrency(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := ocrresult.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OcrResultCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "OcrResult.job_id"`)}
	}
	if _, ok := _c.mutation.TransactionDate(); !ok {
		return &ValidationError{Name: "transaction_date", err: errors.New(`ent: missing required field "OcrResult.transaction_date"`)}
	}
	if v, ok := _c.mutation.TransactionDate(); ok {
		if err := ocrresult.TransactionDateValidator(v); err != nil {
			return &ValidationError{Name: "transaction_date", err: fmt.Errorf(`ent: validator failed for field "OcrResult.transaction_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountValue(); !ok {
		return &ValidationError{Name: "amount_value", err: errors.New(`ent: missing required field "OcrResult.amount_value"`)}
	}
	if v, ok := _c.mutation.AmountValue(); ok {
		if err := ocrresult.AmountValueValidator(v); err != nil {
			return &ValidationError{Name: "amount_value", err: fmt.Errorf(`ent: validator failed for field "OcrResult.amount_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountCurrency(); !ok {
		return &ValidationError{Name: "amount_currency", err: errors.New(`ent: missing required field "OcrResult.amount_currency"`)}
	}
	if _, ok := _c.mutation.CategoryCode(); !ok {
		return &ValidationError{Name: "category_code", err: errors.New(`ent: missing required field "OcrResult.category_code"`)}
	}
	if v, ok := _c.mutation.CategoryCode(); ok {
		if err := ocrresult.CategoryCodeValidator(v); err != nil {
			return &ValidationError{Name: "category_code", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CategoryName(); !ok {
		return &ValidationError{Name: "category_name", err: errors.New(`ent: missing required field "OcrResult.category_name"`)}
	}
	if v, ok := _c.mutation.CategoryName(); ok {
		if err := ocrresult.CategoryNameValidator(v); err != nil {
			return &ValidationError{Name: "category_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingTime(); !ok {
		return &ValidationError{Name: "processing_time", err: errors.New(`ent: missing required field "OcrResult.processing_time"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "OcrResult.word_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OcrResult.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "OcrResult.job"`)}
	}
	return nil
}

func (_c *OcrResultCreate) sqlSave(ctx context.Context) (*OcrResult, error) {
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

func (_c *OcrResultCreate) createSpec() (*OcrResult, *sqlgraph.CreateSpec) {
	var (
		_node = &OcrResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrresult.Table, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TransactionDate(); ok {
		_spec.SetField(ocrresult.FieldTransactionDate, field.TypeString, value)
		_node.TransactionDate = value
	}
	if value, ok := _c.mutation.AmountValue(); ok {
		_spec.SetField(ocrresult.FieldAmountValue, field.TypeInt64, value)
		_node.AmountValue = value
	}
	if value, ok := _c.mutation.AmountCurrency(); ok {
		_spec.SetField(ocrresult.FieldAmountCurrency, field.TypeString, value)
		_node.AmountCurrency = value
	}
	if value, ok := _c.mutation.CategoryCode(); ok {
		_spec.SetField(ocrresult.FieldCategoryCode, field.TypeString, value)
		_node.CategoryCode = value
	}
	if value, ok := _c.mutation.CategoryName(); ok {
		_spec.SetField(ocrresult.FieldCategoryName, field.TypeString, value)
		_node.CategoryName = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(ocrresult.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(ocrresult.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.ProcessingTime(); ok {
		_spec.SetField(ocrresult.FieldProcessingTime, field.TypeFloat64, value)
		_node.ProcessingTime = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(ocrresult.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrresult.JobTable,
			Columns: []string{ocrresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OcrResultCreateBulk is the builder for creating many OcrResult entities in bulk.
type OcrResultCreateBulk struct {
	config
	err      error
	builders []*OcrResultCreate
}

// Save creates the OcrResult entities in the database.
func (_c *OcrResultCreateBulk) Save(ctx context.Context) ([]*OcrResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OcrResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OcrResultMutation)
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
func (_c *OcrResultCreateBulk) SaveX(ctx context.Context) []*OcrResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
