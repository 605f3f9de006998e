// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocID, v))
}

// DownloadID applies equality check predicate on the "download_id" field. It's identical to DownloadIDEQ.
func DownloadID(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDownloadID, v))
}

// StorageURI applies equality check predicate on the "storage_uri" field. It's identical to StorageURIEQ.
func StorageURI(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldStorageURI, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldDocID, v))
}

// DownloadIDEQ applies the EQ predicate on the "download_id" field.
func DownloadIDEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldDownloadID, v))
}

// DownloadIDNEQ applies the NEQ predicate on the "download_id" field.
func DownloadIDNEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldDownloadID, v))
}

// DownloadIDIn applies the In predicate on the "download_id" field.
func DownloadIDIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldDownloadID, vs...))
}

// DownloadIDNotIn applies the NotIn predicate on the "download_id" field.
func DownloadIDNotIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldDownloadID, vs...))
}

// StorageURIEQ applies the EQ predicate on the "storage_uri" field.
func StorageURIEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldStorageURI, v))
}

// StorageURINEQ applies the NEQ predicate on the "storage_uri" field.
func StorageURINEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldStorageURI, v))
}

// StorageURIIn applies the In predicate on the "storage_uri" field.
func StorageURIIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldStorageURI, vs...))
}

// StorageURINotIn applies the NotIn predicate on the "storage_uri" field.
func StorageURINotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldStorageURI, vs...))
}

// StorageURIGT applies the GT predicate on the "storage_uri" field.
func StorageURIGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldStorageURI, v))
}

// StorageURIGTE applies the GTE predicate on the "storage_uri" field.
func StorageURIGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldStorageURI, v))
}

// StorageURILT applies the LT predicate on the "storage_uri" field.
func StorageURILT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldStorageURI, v))
}

// StorageURILTE applies the LTE predicate on the "storage_uri" field.
func StorageURILTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldStorageURI, v))
}

// StorageURIContains applies the Contains predicate on the "storage_uri" field.
func StorageURIContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldStorageURI, v))
}

// StorageURIHasPrefix applies the HasPrefix predicate on the "storage_uri" field.
func StorageURIHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldStorageURI, v))
}

// StorageURIHasSuffix applies the HasSuffix predicate on the "storage_uri" field.
func StorageURIHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldStorageURI, v))
}

// StorageURIEqualFold applies the EqualFold predicate on the "storage_uri" field.
func StorageURIEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldStorageURI, v))
}

// StorageURIContainsFold applies the ContainsFold predicate on the "storage_uri" field.
func StorageURIContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldStorageURI, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDownload applies the HasEdge predicate on the "download" edge.
func HasDownload() predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DownloadTable, DownloadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDownloadWith applies the HasEdge predicate on the "download" edge with a given conditions (other predicates).
func HasDownloadWith(preds ...predicate.Download) predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := newDownloadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OcrResult) predicate.OcrResult {
	return predicate.OcrResult(sql.NotPredicates(p))
}
