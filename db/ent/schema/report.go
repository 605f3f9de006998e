package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/db/ent/schema/utils"
)

type Report struct{ ent.Schema }

func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("doc_id").NotEmpty().Unique(),
		field.String("filer_name").NotEmpty(),
		field.String("filer_status").NotEmpty().
			Validate(utils.EnumValidator(constants.FilerStatuses...)),
		field.String("state").NotEmpty().MinLen(2).MaxLen(2).
			SchemaType(map[string]string{dialect.Postgres: "char(2)"}),
		field.Int("district").NonNegative(),
		field.String("source_url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE report -> MANY transactions; deleting the report removes them.
		edge.To("transactions", Transaction.Type).
			Annotations(entsql.Annotation{
				OnDelete: entsql.Cascade,
			}),
	}
}

type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("report_id", uuid.UUID{}),
		field.String("doc_id").NotEmpty(),
		// Order within the source document; timestamps are not unique enough
		// to reconstruct it.
		field.Int("position").NonNegative(),
		field.String("owner").Optional().Nillable().
			Validate(utils.EnumValidator(constants.Ownerships...)),
		field.String("asset_name").NotEmpty(),
		field.String("asset_type").Optional(),
		field.String("filing_status").NotEmpty().
			Validate(utils.EnumValidator(constants.FilingStatuses...)),
		field.String("trade_type").NotEmpty().
			Validate(utils.EnumValidator(constants.TradeTypes...)),
		field.String("amount_range").NotEmpty().
			Validate(utils.EnumValidator(constants.AmountRangeValues...)),
		field.Time("trade_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("notification_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("source_url").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("transactions").
			Field("report_id").
			Unique().
			Required(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id"),
		index.Fields("trade_date"),
		index.Fields("asset_name"),
	}
}
