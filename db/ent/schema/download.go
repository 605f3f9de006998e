package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Download struct{ ent.Schema }

func (Download) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "downloads"},
	}
}

func (Download) Fields() []ent.Field {
	return []ent.Field{
		field.String("doc_id").NotEmpty().Unique(),
		field.String("etag").Optional(),
		field.String("storage_uri").NotEmpty(),
		field.Time("fetched_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Download) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE download -> MANY OCR results
		edge.To("ocr_results", OcrResult.Type),
	}
}

type OcrResult struct{ ent.Schema }

func (OcrResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OcrResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("doc_id").NotEmpty(),
		field.Int("download_id"),
		field.String("storage_uri").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (OcrResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("download", Download.Type).
			Ref("ocr_results").
			Field("download_id").
			Unique().
			Required(),
	}
}

func (OcrResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id"),
	}
}
