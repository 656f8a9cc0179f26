// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/notesos/ingest/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTopicID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// UploaderName applies equality check predicate on the "uploader_name" field. It's identical to UploaderNameEQ.
func UploaderName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploaderName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessed, v))
}

// OcrProvider applies equality check predicate on the "ocr_provider" field. It's identical to OcrProviderEQ.
func OcrProvider(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrProvider, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrConfidence, v))
}

// NeedsAggressiveCleanup applies equality check predicate on the "needs_aggressive_cleanup" field. It's identical to NeedsAggressiveCleanupEQ.
func NeedsAggressiveCleanup(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsAggressiveCleanup, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTopicID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// UploaderNameEQ applies the EQ predicate on the "uploader_name" field.
func UploaderNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploaderName, v))
}

// UploaderNameNEQ applies the NEQ predicate on the "uploader_name" field.
func UploaderNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploaderName, v))
}

// UploaderNameIn applies the In predicate on the "uploader_name" field.
func UploaderNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploaderName, vs...))
}

// UploaderNameNotIn applies the NotIn predicate on the "uploader_name" field.
func UploaderNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploaderName, vs...))
}

// UploaderNameGT applies the GT predicate on the "uploader_name" field.
func UploaderNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploaderName, v))
}

// UploaderNameGTE applies the GTE predicate on the "uploader_name" field.
func UploaderNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploaderName, v))
}

// UploaderNameLT applies the LT predicate on the "uploader_name" field.
func UploaderNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploaderName, v))
}

// UploaderNameLTE applies the LTE predicate on the "uploader_name" field.
func UploaderNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploaderName, v))
}

// UploaderNameContains applies the Contains predicate on the "uploader_name" field.
func UploaderNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldUploaderName, v))
}

// UploaderNameHasPrefix applies the HasPrefix predicate on the "uploader_name" field.
func UploaderNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldUploaderName, v))
}

// UploaderNameHasSuffix applies the HasSuffix predicate on the "uploader_name" field.
func UploaderNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldUploaderName, v))
}

// UploaderNameEqualFold applies the EqualFold predicate on the "uploader_name" field.
func UploaderNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldUploaderName, v))
}

// UploaderNameContainsFold applies the ContainsFold predicate on the "uploader_name" field.
func UploaderNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldUploaderName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilePath, v))
}

// SourceFormatEQ applies the EQ predicate on the "source_format" field.
func SourceFormatEQ(v SourceFormat) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFormat, v))
}

// SourceFormatNEQ applies the NEQ predicate on the "source_format" field.
func SourceFormatNEQ(v SourceFormat) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceFormat, v))
}

// SourceFormatIn applies the In predicate on the "source_format" field.
func SourceFormatIn(vs ...SourceFormat) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceFormat, vs...))
}

// SourceFormatNotIn applies the NotIn predicate on the "source_format" field.
func SourceFormatNotIn(vs ...SourceFormat) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceFormat, vs...))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessed, v))
}

// OcrProviderEQ applies the EQ predicate on the "ocr_provider" field.
func OcrProviderEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrProvider, v))
}

// OcrProviderNEQ applies the NEQ predicate on the "ocr_provider" field.
func OcrProviderNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrProvider, v))
}

// OcrProviderIn applies the In predicate on the "ocr_provider" field.
func OcrProviderIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrProvider, vs...))
}

// OcrProviderNotIn applies the NotIn predicate on the "ocr_provider" field.
func OcrProviderNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrProvider, vs...))
}

// OcrProviderGT applies the GT predicate on the "ocr_provider" field.
func OcrProviderGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrProvider, v))
}

// OcrProviderGTE applies the GTE predicate on the "ocr_provider" field.
func OcrProviderGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrProvider, v))
}

// OcrProviderLT applies the LT predicate on the "ocr_provider" field.
func OcrProviderLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrProvider, v))
}

// OcrProviderLTE applies the LTE predicate on the "ocr_provider" field.
func OcrProviderLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrProvider, v))
}

// OcrProviderContains applies the Contains predicate on the "ocr_provider" field.
func OcrProviderContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrProvider, v))
}

// OcrProviderHasPrefix applies the HasPrefix predicate on the "ocr_provider" field.
func OcrProviderHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrProvider, v))
}

// OcrProviderHasSuffix applies the HasSuffix predicate on the "ocr_provider" field.
func OcrProviderHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrProvider, v))
}

// OcrProviderIsNil applies the IsNil predicate on the "ocr_provider" field.
func OcrProviderIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrProvider))
}

// OcrProviderNotNil applies the NotNil predicate on the "ocr_provider" field.
func OcrProviderNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrProvider))
}

// OcrProviderEqualFold applies the EqualFold predicate on the "ocr_provider" field.
func OcrProviderEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrProvider, v))
}

// OcrProviderContainsFold applies the ContainsFold predicate on the "ocr_provider" field.
func OcrProviderContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrProvider, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrConfidence))
}

// NeedsAggressiveCleanupEQ applies the EQ predicate on the "needs_aggressive_cleanup" field.
func NeedsAggressiveCleanupEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsAggressiveCleanup, v))
}

// NeedsAggressiveCleanupNEQ applies the NEQ predicate on the "needs_aggressive_cleanup" field.
func NeedsAggressiveCleanupNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNeedsAggressiveCleanup, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
