// Code generated by ent, DO NOT EDIT.

package download

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldDocID, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldEtag, v))
}

// StorageURI applies equality check predicate on the "storage_uri" field. It's identical to StorageURIEQ.
func StorageURI(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldStorageURI, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldFetchedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.Download {
	return predicate.Download(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.Download {
	return predicate.Download(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.Download {
	return predicate.Download(sql.FieldContainsFold(FieldDocID, v))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.Download {
	return predicate.Download(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.Download {
	return predicate.Download(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.Download {
	return predicate.Download(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.Download {
	return predicate.Download(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.Download {
	return predicate.Download(sql.FieldContainsFold(FieldEtag, v))
}

// StorageURIEQ applies the EQ predicate on the "storage_uri" field.
func StorageURIEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldStorageURI, v))
}

// StorageURINEQ applies the NEQ predicate on the "storage_uri" field.
func StorageURINEQ(v string) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldStorageURI, v))
}

// StorageURIIn applies the In predicate on the "storage_uri" field.
func StorageURIIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldStorageURI, vs...))
}

// StorageURINotIn applies the NotIn predicate on the "storage_uri" field.
func StorageURINotIn(vs ...string) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldStorageURI, vs...))
}

// StorageURIGT applies the GT predicate on the "storage_uri" field.
func StorageURIGT(v string) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldStorageURI, v))
}

// StorageURIGTE applies the GTE predicate on the "storage_uri" field.
func StorageURIGTE(v string) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldStorageURI, v))
}

// StorageURILT applies the LT predicate on the "storage_uri" field.
func StorageURILT(v string) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldStorageURI, v))
}

// StorageURILTE applies the LTE predicate on the "storage_uri" field.
func StorageURILTE(v string) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldStorageURI, v))
}

// StorageURIContains applies the Contains predicate on the "storage_uri" field.
func StorageURIContains(v string) predicate.Download {
	return predicate.Download(sql.FieldContains(FieldStorageURI, v))
}

// StorageURIHasPrefix applies the HasPrefix predicate on the "storage_uri" field.
func StorageURIHasPrefix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasPrefix(FieldStorageURI, v))
}

// StorageURIHasSuffix applies the HasSuffix predicate on the "storage_uri" field.
func StorageURIHasSuffix(v string) predicate.Download {
	return predicate.Download(sql.FieldHasSuffix(FieldStorageURI, v))
}

// StorageURIEqualFold applies the EqualFold predicate on the "storage_uri" field.
func StorageURIEqualFold(v string) predicate.Download {
	return predicate.Download(sql.FieldEqualFold(FieldStorageURI, v))
}

// StorageURIContainsFold applies the ContainsFold predicate on the "storage_uri" field.
func StorageURIContainsFold(v string) predicate.Download {
	return predicate.Download(sql.FieldContainsFold(FieldStorageURI, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldFetchedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Download {
	return predicate.Download(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Download {
	return predicate.Download(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Download {
	return predicate.Download(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOcrResults applies the HasEdge predicate on the "ocr_results" edge.
func HasOcrResults() predicate.Download {
	return predicate.Download(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OcrResultsTable, OcrResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOcrResultsWith applies the HasEdge predicate on the "ocr_results" edge with a given conditions (other predicates).
func HasOcrResultsWith(preds ...predicate.OcrResult) predicate.Download {
	return predicate.Download(func(s *sql.Selector) {
		step := newOcrResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Download) predicate.Download {
	return predicate.Download(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Download) predicate.Download {
	return predicate.Download(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Download) predicate.Download {
	return predicate.Download(sql.NotPredicates(p))
}
