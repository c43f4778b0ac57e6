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
	"github.com/finbot-vn/finbot/gen/ent/chatsession"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/finbot-vn/finbot/gen/ent/predicate"
	"github.com/finbot-vn/finbot/gen/ent/user"
	"github.com/google/uuid"
)

// OcrJobUpdate is the builder for updating OcrJob entities.
type OcrJobUpdate struct {
	config
	hooks    []Hook
	mutation *OcrJobMutation
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdate) Where(ps ...predicate.OcrJob) *OcrJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *OcrJobUpdate) SetSessionID(v uuid.UUID) *OcrJobUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableSessionID(v *uuid.UUID) *OcrJobUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OcrJobUpdate) SetUserID(v uuid.UUID) *OcrJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableUserID(v *uuid.UUID) *OcrJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *OcrJobUpdate) SetOriginalFilename(v string) *OcrJobUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableOriginalFilename(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *OcrJobUpdate) SetFileSize(v int64) *OcrJobUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableFileSize(v *int64) *OcrJobUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *OcrJobUpdate) AddFileSize(v int64) *OcrJobUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *OcrJobUpdate) SetContentType(v string) *OcrJobUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableContentType(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *OcrJobUpdate) SetFormat(v string) *OcrJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableFormat(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetHints sets the "hints" field.
func (_u *OcrJobUpdate) SetHints(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *OcrJobUpdate) AppendHints(v json.RawMessage) *OcrJobUpdate {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *OcrJobUpdate) ClearHints() *OcrJobUpdate {
	_u.mutation.ClearHints()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdate) SetStatus(v string) *OcrJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableStatus(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OcrJobUpdate) SetErrorMessage(v string) *OcrJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableErrorMessage(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OcrJobUpdate) ClearErrorMessage() *OcrJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrJobUpdate) SetCreatedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableCreatedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OcrJobUpdate) SetStartedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableStartedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OcrJobUpdate) ClearStartedAt() *OcrJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OcrJobUpdate) SetCompletedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableCompletedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OcrJobUpdate) ClearCompletedAt() *OcrJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *OcrJobUpdate) SetSession(v *ChatSession) *OcrJobUpdate {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *OcrJobUpdate) SetUser(v *User) *OcrJobUpdate {
	return _u.SetUserID(v.ID)
}

// SetResultID sets the "result" edge to the OcrResult entity by ID.
func (_u *OcrJobUpdate) SetResultID(id uuid.UUID) *OcrJobUpdate {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the OcrResult entity by ID if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableResultID(id *uuid.UUID) *OcrJobUpdate {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the OcrResult entity.
func (_u *OcrJobUpdate) SetResult(v *OcrResult) *OcrJobUpdate {
	return _u.SetResultID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdate) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *OcrJobUpdate) ClearSession() *OcrJobUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OcrJobUpdate) ClearUser() *OcrJobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearResult clears the "result" edge to the OcrResult entity.
func (_u *OcrJobUpdate) ClearResult() *OcrJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdate) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := ocrjob.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "OcrJob.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := ocrjob.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "OcrJob.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := ocrjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "OcrJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.session"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.user"`)
	}
	return nil
}

func (_u *OcrJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(ocrjob.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(ocrjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(ocrjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(ocrjob.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ocrjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(ocrjob.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(ocrjob.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ocrjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ocrjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ocrjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ocrjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ocrjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ocrjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.SessionTable,
			Columns: []string{ocrjob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.SessionTable,
			Columns: []string{ocrjob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   ocrjob.ResultTable,
			Columns: []string{ocrjob.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   ocrjob.ResultTable,
			Columns: []string{ocrjob.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrJobUpdateOne is the builder for updating a single OcrJob entity.
type OcrJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrJobMutation
}

// SetSessionID sets the "session_id" field.
func (_u *OcrJobUpdateOne) SetSessionID(v uuid.UUID) *OcrJobUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableSessionID(v *uuid.UUID) *OcrJobUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OcrJobUpdateOne) SetUserID(v uuid.UUID) *OcrJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableUserID(v *uuid.UUID) *OcrJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *OcrJobUpdateOne) SetOriginalFilename(v string) *OcrJobUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableOriginalFilename(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *OcrJobUpdateOne) SetFileSize(v int64) *OcrJobUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableFileSize(v *int64) *OcrJobUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *OcrJobUpdateOne) AddFileSize(v int64) *OcrJobUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *OcrJobUpdateOne) SetContentType(v string) *OcrJobUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableContentType(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *OcrJobUpdateOne) SetFormat(v string) *OcrJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableFormat(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetHints sets the "hints" field.
func (_u *OcrJobUpdateOne) SetHints(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *OcrJobUpdateOne) AppendHints(v json.RawMessage) *OcrJobUpdateOne {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *OcrJobUpdateOne) ClearHints() *OcrJobUpdateOne {
	_u.mutation.ClearHints()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdateOne) SetStatus(v string) *OcrJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableStatus(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OcrJobUpdateOne) SetErrorMessage(v string) *OcrJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableErrorMessage(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OcrJobUpdateOne) ClearErrorMessage() *OcrJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OcrJobUpdateOne) SetCreatedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableCreatedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OcrJobUpdateOne) SetStartedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableStartedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OcrJobUpdateOne) ClearStartedAt() *OcrJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OcrJobUpdateOne) SetCompletedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableCompletedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OcrJobUpdateOne) ClearCompletedAt() *OcrJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_u *OcrJobUpdateOne) SetSession(v *ChatSession) *OcrJobUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *OcrJobUpdateOne) SetUser(v *User) *OcrJobUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetResultID sets the "result" edge to the OcrResult entity by ID.
func (_u *OcrJobUpdateOne) SetResultID(id uuid.UUID) *OcrJobUpdateOne {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the OcrResult entity by ID if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableResultID(id *uuid.UUID) *OcrJobUpdateOne {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the OcrResult entity.
func (_u *OcrJobUpdateOne) SetResult(v *OcrResult) *OcrJobUpdateOne {
	return _u.SetResultID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdateOne) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (_u *OcrJobUpdateOne) ClearSession() *OcrJobUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OcrJobUpdateOne) ClearUser() *OcrJobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearResult clears the "result" edge to the OcrResult entity.
func (_u *OcrJobUpdateOne) ClearResult() *OcrJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdateOne) Where(ps ...predicate.OcrJob) *OcrJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrJobUpdateOne) Select(field string, fields ...string) *OcrJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrJob entity.
func (_u *OcrJobUpdateOne) Save(ctx context.Context) (*OcrJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdateOne) SaveX(ctx context.Context) *OcrJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdateOne) check() error {
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := ocrjob.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "OcrJob.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := ocrjob.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`ent: validator failed for field "OcrJob.content_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := ocrjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "OcrJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.session"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.user"`)
	}
	return nil
}

func (_u *OcrJobUpdateOne) sqlSave(ctx context.Context) (_node *OcrJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrjob.FieldID)
		for _, f := range fields {
			if !ocrjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrjob.FieldID {
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
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(ocrjob.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(ocrjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(ocrjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(ocrjob.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(ocrjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(ocrjob.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ocrjob.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(ocrjob.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ocrjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ocrjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ocrjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ocrjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ocrjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ocrjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.SessionTable,
			Columns: []string{ocrjob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.SessionTable,
			Columns: []string{ocrjob.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   ocrjob.ResultTable,
			Columns: []string{ocrjob.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   ocrjob.ResultTable,
			Columns: []string{ocrjob.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OcrJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
