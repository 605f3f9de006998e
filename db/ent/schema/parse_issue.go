package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/db/ent/schema/utils"
)

// ParseIssue rows are append-only: reprocessing a document adds new rows
// and never rewrites old ones.
type ParseIssue struct{ ent.Schema }

func (ParseIssue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_issues"},
	}
}

func (ParseIssue) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("doc_id").NotEmpty().Immutable(),
		field.String("severity").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.IssueSeverities...)),
		field.String("category").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.IssueCategories...)),
		field.String("message").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("details").Optional().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("location").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ParseIssue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id", "created_at"),
		index.Fields("severity"),
	}
}
