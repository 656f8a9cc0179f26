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

type Topic struct{ ent.Schema }

func (Topic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "topics"},
	}
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("course_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY topics -> ONE course (FK: topics.course_id)
		edge.From("course", Course.Type).
			Ref("topics").
			Field("course_id").
			Required().
			Unique(),
		edge.To("documents", Document.Type),
	}
}
