// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocID, v))
}

// FilerName applies equality check predicate on the "filer_name" field. It's identical to FilerNameEQ.
func FilerName(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilerName, v))
}

// FilerStatus applies equality check predicate on the "filer_status" field. It's identical to FilerStatusEQ.
func FilerStatus(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilerStatus, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldState, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDistrict, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSourceURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDocID, v))
}

// FilerNameEQ applies the EQ predicate on the "filer_name" field.
func FilerNameEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilerName, v))
}

// FilerNameNEQ applies the NEQ predicate on the "filer_name" field.
func FilerNameNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldFilerName, v))
}

// FilerNameIn applies the In predicate on the "filer_name" field.
func FilerNameIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldFilerName, vs...))
}

// FilerNameNotIn applies the NotIn predicate on the "filer_name" field.
func FilerNameNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldFilerName, vs...))
}

// FilerNameGT applies the GT predicate on the "filer_name" field.
func FilerNameGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldFilerName, v))
}

// FilerNameGTE applies the GTE predicate on the "filer_name" field.
func FilerNameGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldFilerName, v))
}

// FilerNameLT applies the LT predicate on the "filer_name" field.
func FilerNameLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldFilerName, v))
}

// FilerNameLTE applies the LTE predicate on the "filer_name" field.
func FilerNameLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldFilerName, v))
}

// FilerNameContains applies the Contains predicate on the "filer_name" field.
func FilerNameContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldFilerName, v))
}

// FilerNameHasPrefix applies the HasPrefix predicate on the "filer_name" field.
func FilerNameHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldFilerName, v))
}

// FilerNameHasSuffix applies the HasSuffix predicate on the "filer_name" field.
func FilerNameHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldFilerName, v))
}

// FilerNameEqualFold applies the EqualFold predicate on the "filer_name" field.
func FilerNameEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldFilerName, v))
}

// FilerNameContainsFold applies the ContainsFold predicate on the "filer_name" field.
func FilerNameContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldFilerName, v))
}

// FilerStatusEQ applies the EQ predicate on the "filer_status" field.
func FilerStatusEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilerStatus, v))
}

// FilerStatusNEQ applies the NEQ predicate on the "filer_status" field.
func FilerStatusNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldFilerStatus, v))
}

// FilerStatusIn applies the In predicate on the "filer_status" field.
func FilerStatusIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldFilerStatus, vs...))
}

// FilerStatusNotIn applies the NotIn predicate on the "filer_status" field.
func FilerStatusNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldFilerStatus, vs...))
}

// FilerStatusGT applies the GT predicate on the "filer_status" field.
func FilerStatusGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldFilerStatus, v))
}

// FilerStatusGTE applies the GTE predicate on the "filer_status" field.
func FilerStatusGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldFilerStatus, v))
}

// FilerStatusLT applies the LT predicate on the "filer_status" field.
func FilerStatusLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldFilerStatus, v))
}

// FilerStatusLTE applies the LTE predicate on the "filer_status" field.
func FilerStatusLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldFilerStatus, v))
}

// FilerStatusContains applies the Contains predicate on the "filer_status" field.
func FilerStatusContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldFilerStatus, v))
}

// FilerStatusHasPrefix applies the HasPrefix predicate on the "filer_status" field.
func FilerStatusHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldFilerStatus, v))
}

// FilerStatusHasSuffix applies the HasSuffix predicate on the "filer_status" field.
func FilerStatusHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldFilerStatus, v))
}

// FilerStatusEqualFold applies the EqualFold predicate on the "filer_status" field.
func FilerStatusEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldFilerStatus, v))
}

// FilerStatusContainsFold applies the ContainsFold predicate on the "filer_status" field.
func FilerStatusContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldFilerStatus, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldState, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDistrict, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldSourceURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
