package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

type FilingList struct{ ent.Schema }

func (FilingList) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "filing_lists"},
	}
}

func (FilingList) Fields() []ent.Field {
	return []ent.Field{
		field.Int("year").Positive().Unique(),
		field.String("etag").Optional().Nillable(),
		field.String("storage_uri").NotEmpty(),
		field.Bool("parsed").Default(false),
		field.Time("parsed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
