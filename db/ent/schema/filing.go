package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/db/ent/schema/utils"
)

type Filing struct{ ent.Schema }

func (Filing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "filings"},
	}
}

func (Filing) Fields() []ent.Field {
	return []ent.Field{
		field.String("doc_id").NotEmpty().Unique(),
		field.String("prefix").Optional(),
		field.String("last").NotEmpty(),
		field.String("first").Optional(),
		field.String("suffix").Optional(),
		field.String("filing_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FilingTypes...)),
		field.String("state_dst").Optional(),
		field.Int("year").Positive(),
		field.Time("filing_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("raw_row").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Filing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("year", "filing_type"),
		index.Fields("last", "first"),
	}
}
