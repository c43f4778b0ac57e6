// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/finbot-vn/finbot/gen/ent/predicate"
	"github.com/google/uuid"
)

// OcrResultUpdate is the builder for updating OcrResult entities.
type OcrResultUpdate struct {
	config
	hooks    []Hook
	mutation *OcrResultMutation
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdate) Where(ps ...predicate.OcrResult) *OcrResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *OcrResultUpdate) SetJobID(v uuid.UUID) *OcrResultUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableJobID(v *uuid.UUID) *OcrResultUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *OcrResultUpdate) SetTransactionDate(v string) *OcrResultUpdate {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableTransactionDate(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetAmountValue sets the "amount_value" field.
func (_u *OcrResultUpdate) SetAmountValue(v int64) *OcrResultUpdate {
	_u.mutation.ResetAmountValue()
	_u.mutation.SetAmountValue(v)
	return _u
}

// SetNillableAmountValue sets the "amount_value" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableAmountValue(v *int64) *OcrResultUpdate {
	if v != nil {
		_u.SetAmountValue(*v)
	}
	return _u
}

// AddAmountValue adds value to the "amount_value" field.
func (_u *OcrResultUpdate) AddAmountValue(v int64) *OcrResultUpdate {
	_u.mutation.AddAmountValue(v)
	return _u
}

// SetAmountCurrency sets the "amount_currency" field.
func (_u *OcrResultUpdate) SetAmountCurrency(v string) *OcrResultUpdate {
	_u.mutation.SetAmountCurrency(v)
	return _u
}

// SetNillableAmountCurrency sets the "amount_currency" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableAmountCurrency(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetAmountCurrency(*v)
	}
	return _u
}

// SetCategoryCode sets the "category_code" field.
func (_u *OcrResultUpdate) SetCategoryCode(v string) *OcrResultUpdate {
	_u.mutation.SetCategoryCode(v)
	return _u
}

// SetNillableCategoryCode sets the "category_code" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableCategoryCode(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetCategoryCode(*v)
	}
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *OcrResultUpdate) SetCategoryName(v string) *OcrResultUpdate {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableCategoryName(v *string) *OcrResultUpdate {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *OcrResultUpdate) SetItems(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OcrResultUpdate) AppendItems(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *OcrResultUpdate) ClearItems() *OcrResultUpdate {
	_u.mutation.ClearItems()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OcrResultUpdate) SetMeta(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// AppendMeta appends value to the "meta" field.
func (_u *OcrResultUpdate) AppendMeta(v json.RawMessage) *OcrResultUpdate {
	_u.mutation.AppendMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OcrResultUpdate) ClearMeta() *OcrResultUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *OcrResultUpdate) SetProcessingTime(v float64) *OcrResultUpdate {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableProcessingTime(v *float64) *OcrResultUpdate {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *OcrResultUpdate) AddProcessingTime(v float64) *OcrResultUpdate {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *OcrResultUpdate) SetWordCount(v int) *OcrResultUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableWordCount(v *int) *OcrResultUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *OcrResultUpdate) AddWordCount(v int) *OcrResultUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdate) SetCreatedAt(v time.Time) *OcrResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdate) SetNillableCreatedAt(v *time.Time) *OcrResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the OcrJob entity.
func (_u *OcrResultUpdate) SetJob(v *OcrJob) *OcrResultUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdate) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the OcrJob entity.
func (_u *OcrResultUpdate) ClearJob() *OcrResultUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdate) check() error {
	if v, ok := _u.mutation.TransactionDate(); ok {
		if err := ocrresult.TransactionDateValidator(v); err != nil {
			return &ValidationError{Name: "transaction_date", err: fmt.Errorf(`ent: validator failed for field "OcrResult.transaction_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountValue(); ok {
		if err := ocrresult.AmountValueValidator(v); err != nil {
			return &ValidationError{Name: "amount_value", err: fmt.Errorf(`ent: validator failed for field "OcrResult.amount_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryCode(); ok {
		if err := ocrresult.CategoryCodeValidator(v); err != nil {
			return &ValidationError{Name: "category_code", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryName(); ok {
		if err := ocrresult.CategoryNameValidator(v); err != nil {
			return &ValidationError{Name: "category_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.job"`)
	}
	return nil
}

func (_u *OcrResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(ocrresult.FieldTransactionDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountValue(); ok {
		_spec.SetField(ocrresult.FieldAmountValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountValue(); ok {
		_spec.AddField(ocrresult.FieldAmountValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountCurrency(); ok {
		_spec.SetField(ocrresult.FieldAmountCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryCode(); ok {
		_spec.SetField(ocrresult.FieldCategoryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(ocrresult.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(ocrresult.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(ocrresult.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(ocrresult.FieldMeta, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeta(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldMeta, value)
		})
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(ocrresult.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(ocrresult.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(ocrresult.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(ocrresult.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(ocrresult.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrResultUpdateOne is the builder for updating a single OcrResult entity.
type OcrResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrResultMutation
}

// SetJobID sets the "job_id" field.
func (_u *OcrResultUpdateOne) SetJobID(v uuid.UUID) *OcrResultUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableJobID(v *uuid.UUID) *OcrResultUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetTransactionDate sets the "transaction_date" field.
func (_u *OcrResultUpdateOne) SetTransactionDate(v string) *OcrResultUpdateOne {
	_u.mutation.SetTransactionDate(v)
	return _u
}

// SetNillableTransactionDate sets the "transaction_date" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableTransactionDate(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetTransactionDate(*v)
	}
	return _u
}

// SetAmountValue sets the "amount_value" field.
func (_u *OcrResultUpdateOne) SetAmountValue(v int64) *OcrResultUpdateOne {
	_u.mutation.ResetAmountValue()
	_u.mutation.SetAmountValue(v)
	return _u
}

// SetNillableAmountValue sets the "amount_value" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableAmountValue(v *int64) *OcrResultUpdateOne {
	if v != nil {
		_u.SetAmountValue(*v)
	}
	return _u
}

// AddAmountValue adds value to the "amount_value" field.
func (_u *OcrResultUpdateOne) AddAmountValue(v int64) *OcrResultUpdateOne {
	_u.mutation.AddAmountValue(v)
	return _u
}

// SetAmountCurrency sets the "amount_currency" field.
func (_u *OcrResultUpdateOne) SetAmountCurrency(v string) *OcrResultUpdateOne {
	_u.mutation.SetAmountCurrency(v)
	return _u
}

// SetNillableAmountCurrency sets the "amount_currency" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableAmountCurrency(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetAmountCurrency(*v)
	}
	return _u
}

// SetCategoryCode sets the "category_code" field.
func (_u *OcrResultUpdateOne) SetCategoryCode(v string) *OcrResultUpdateOne {
	_u.mutation.SetCategoryCode(v)
	return _u
}

// SetNillableCategoryCode sets the "category_code" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableCategoryCode(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetCategoryCode(*v)
	}
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *OcrResultUpdateOne) SetCategoryName(v string) *OcrResultUpdateOne {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableCategoryName(v *string) *OcrResultUpdateOne {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *OcrResultUpdateOne) SetItems(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *OcrResultUpdateOne) AppendItems(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *OcrResultUpdateOne) ClearItems() *OcrResultUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OcrResultUpdateOne) SetMeta(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// AppendMeta appends value to the "meta" field.
func (_u *OcrResultUpdateOne) AppendMeta(v json.RawMessage) *OcrResultUpdateOne {
	_u.mutation.AppendMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OcrResultUpdateOne) ClearMeta() *OcrResultUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *OcrResultUpdateOne) SetProcessingTime(v float64) *OcrResultUpdateOne {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableProcessingTime(v *float64) *OcrResultUpdateOne {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *OcrResultUpdateOne) AddProcessingTime(v float64) *OcrResultUpdateOne {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *OcrResultUpdateOne) SetWordCount(v int) *OcrResultUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableWordCount(v *int) *OcrResultUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *OcrResultUpdateOne) AddWordCount(v int) *OcrResultUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrResultUpdateOne) SetCreatedAt(v time.Time) *OcrResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrResultUpdateOne) SetNillableCreatedAt(v *time.Time) *OcrResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the OcrJob entity.
func (_u *OcrResultUpdateOne) SetJob(v *OcrJob) *OcrResultUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the OcrResultMutation object of the builder.
func (_u *OcrResultUpdateOne) Mutation() *OcrResultMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the OcrJob entity.
func (_u *OcrResultUpdateOne) ClearJob() *OcrResultUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the OcrResultUpdate builder.
func (_u *OcrResultUpdateOne) Where(ps ...predicate.OcrResult) *OcrResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrResultUpdateOne) Select(field string, fields ...string) *OcrResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrResult entity.
func (_u *OcrResultUpdateOne) Save(ctx context.Context) (*OcrResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrResultUpdateOne) SaveX(ctx context.Context) *OcrResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrResultUpdateOne) check() error {
	if v, ok := _u.mutation.TransactionDate(); ok {
		if err := ocrresult.TransactionDateValidator(v); err != nil {
			return &ValidationError{Name: "transaction_date", err: fmt.Errorf(`ent: validator failed for field "OcrResult.transaction_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmountValue(); ok {
		if err := ocrresult.AmountValueValidator(v); err != nil {
			return &ValidationError{Name: "amount_value", err: fmt.Errorf(`ent: validator failed for field "OcrResult.amount_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryCode(); ok {
		if err := ocrresult.CategoryCodeValidator(v); err != nil {
			return &ValidationError{Name: "category_code", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryName(); ok {
		if err := ocrresult.CategoryNameValidator(v); err != nil {
			return &ValidationError{Name: "category_name", err: fmt.Errorf(`ent: validator failed for field "OcrResult.category_name": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrResult.job"`)
	}
	return nil
}

func (_u *OcrResultUpdateOne) sqlSave(ctx context.Context) (_node *OcrResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrresult.FieldID)
		for _, f := range fields {
			if !ocrresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrresult.FieldID {
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
	if value, ok := _u.mutation.TransactionDate(); ok {
		_spec.SetField(ocrresult.FieldTransactionDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountValue(); ok {
		_spec.SetField(ocrresult.FieldAmountValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountValue(); ok {
		_spec.AddField(ocrresult.FieldAmountValue, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AmountCurrency(); ok {
		_spec.SetField(ocrresult.FieldAmountCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryCode(); ok {
		_spec.SetField(ocrresult.FieldCategoryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(ocrresult.FieldCategoryName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(ocrresult.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(ocrresult.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(ocrresult.FieldMeta, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeta(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrresult.FieldMeta, value)
		})
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(ocrresult.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(ocrresult.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(ocrresult.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(ocrresult.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(ocrresult.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OcrResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
