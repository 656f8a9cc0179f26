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
	"github.com/notesos/ingest/gen/ent/document"
	"github.com/notesos/ingest/gen/ent/predicate"
	"github.com/notesos/ingest/gen/ent/topic"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *DocumentUpdate) SetTopicID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTopicID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetUploaderName sets the "uploader_name" field.
func (_u *DocumentUpdate) SetUploaderName(v string) *DocumentUpdate {
	_u.mutation.SetUploaderName(v)
	return _u
}

// SetNillableUploaderName sets the "uploader_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploaderName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUploaderName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *DocumentUpdate) SetSourceFormat(v document.SourceFormat) *DocumentUpdate {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceFormat(v *document.SourceFormat) *DocumentUpdate {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *DocumentUpdate) SetProcessed(v bool) *DocumentUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessed(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetOcrProvider sets the "ocr_provider" field.
func (_u *DocumentUpdate) SetOcrProvider(v string) *DocumentUpdate {
	_u.mutation.SetOcrProvider(v)
	return _u
}

// SetNillableOcrProvider sets the "ocr_provider" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrProvider(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrProvider(*v)
	}
	return _u
}

// ClearOcrProvider clears the value of the "ocr_provider" field.
func (_u *DocumentUpdate) ClearOcrProvider() *DocumentUpdate {
	_u.mutation.ClearOcrProvider()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdate) SetOcrConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdate) AddOcrConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdate) ClearOcrConfidence() *DocumentUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetNeedsAggressiveCleanup sets the "needs_aggressive_cleanup" field.
func (_u *DocumentUpdate) SetNeedsAggressiveCleanup(v bool) *DocumentUpdate {
	_u.mutation.SetNeedsAggressiveCleanup(v)
	return _u
}

// SetNillableNeedsAggressiveCleanup sets the "needs_aggressive_cleanup" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNeedsAggressiveCleanup(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetNeedsAggressiveCleanup(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *DocumentUpdate) SetTopic(v *Topic) *DocumentUpdate {
	return _u.SetTopicID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *DocumentUpdate) ClearTopic() *DocumentUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := document.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Document.source_format": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.topic"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploaderName(); ok {
		_spec.SetField(document.FieldUploaderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(document.FieldSourceFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(document.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrProvider(); ok {
		_spec.SetField(document.FieldOcrProvider, field.TypeString, value)
	}
	if _u.mutation.OcrProviderCleared() {
		_spec.ClearField(document.FieldOcrProvider, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsAggressiveCleanup(); ok {
		_spec.SetField(document.FieldNeedsAggressiveCleanup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.TopicTable,
			Columns: []string{document.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.TopicTable,
			Columns: []string{document.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *DocumentUpdateOne) SetTopicID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTopicID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetUploaderName sets the "uploader_name" field.
func (_u *DocumentUpdateOne) SetUploaderName(v string) *DocumentUpdateOne {
	_u.mutation.SetUploaderName(v)
	return _u
}

// SetNillableUploaderName sets the "uploader_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploaderName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploaderName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetSourceFormat sets the "source_format" field.
func (_u *DocumentUpdateOne) SetSourceFormat(v document.SourceFormat) *DocumentUpdateOne {
	_u.mutation.SetSourceFormat(v)
	return _u
}

// SetNillableSourceFormat sets the "source_format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceFormat(v *document.SourceFormat) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceFormat(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *DocumentUpdateOne) SetProcessed(v bool) *DocumentUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessed(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetOcrProvider sets the "ocr_provider" field.
func (_u *DocumentUpdateOne) SetOcrProvider(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrProvider(v)
	return _u
}

// SetNillableOcrProvider sets the "ocr_provider" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrProvider(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrProvider(*v)
	}
	return _u
}

// ClearOcrProvider clears the value of the "ocr_provider" field.
func (_u *DocumentUpdateOne) ClearOcrProvider() *DocumentUpdateOne {
	_u.mutation.ClearOcrProvider()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *DocumentUpdateOne) SetOcrConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *DocumentUpdateOne) AddOcrConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *DocumentUpdateOne) ClearOcrConfidence() *DocumentUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetNeedsAggressiveCleanup sets the "needs_aggressive_cleanup" field.
func (_u *DocumentUpdateOne) SetNeedsAggressiveCleanup(v bool) *DocumentUpdateOne {
	_u.mutation.SetNeedsAggressiveCleanup(v)
	return _u
}

// SetNillableNeedsAggressiveCleanup sets the "needs_aggressive_cleanup" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNeedsAggressiveCleanup(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetNeedsAggressiveCleanup(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *DocumentUpdateOne) SetTopic(v *Topic) *DocumentUpdateOne {
	return _u.SetTopicID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *DocumentUpdateOne) ClearTopic() *DocumentUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFormat(); ok {
		if err := document.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "Document.source_format": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.topic"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploaderName(); ok {
		_spec.SetField(document.FieldUploaderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFormat(); ok {
		_spec.SetField(document.FieldSourceFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(document.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OcrProvider(); ok {
		_spec.SetField(document.FieldOcrProvider, field.TypeString, value)
	}
	if _u.mutation.OcrProviderCleared() {
		_spec.ClearField(document.FieldOcrProvider, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(document.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(document.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(document.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsAggressiveCleanup(); ok {
		_spec.SetField(document.FieldNeedsAggressiveCleanup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.TopicTable,
			Columns: []string{document.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.TopicTable,
			Columns: []string{document.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
