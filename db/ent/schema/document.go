package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("topic_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("uploader_name").Default(""),
		field.String("file_path").NotEmpty(),
		field.Enum("source_format").
			Values("IMAGE", "PDF", "DOCX", "TEXT"),
		// Set once the document's chunks are indexed; reset on re-ingest failure.
		field.Bool("processed").Default(false),
		field.String("ocr_provider").Optional().Nillable(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Bool("needs_aggressive_cleanup").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE topic (FK: documents.topic_id)
		edge.From("topic", Topic.Type).
			Ref("documents").
			Field("topic_id").
			Required().
			Unique(),
	}
}
