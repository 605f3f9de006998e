// Code generated by ent, DO NOT EDIT.

package filinglist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldID, id))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldYear, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldEtag, v))
}

// StorageURI applies equality check predicate on the "storage_uri" field. It's identical to StorageURIEQ.
func StorageURI(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldStorageURI, v))
}

// Parsed applies equality check predicate on the "parsed" field. It's identical to ParsedEQ.
func Parsed(v bool) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldParsed, v))
}

// ParsedAt applies equality check predicate on the "parsed_at" field. It's identical to ParsedAtEQ.
func ParsedAt(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldParsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldUpdatedAt, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldYear, v))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.FilingList {
	return predicate.FilingList(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.FilingList {
	return predicate.FilingList(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldContainsFold(FieldEtag, v))
}

// StorageURIEQ applies the EQ predicate on the "storage_uri" field.
func StorageURIEQ(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldStorageURI, v))
}

// StorageURINEQ applies the NEQ predicate on the "storage_uri" field.
func StorageURINEQ(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldStorageURI, v))
}

// StorageURIIn applies the In predicate on the "storage_uri" field.
func StorageURIIn(vs ...string) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldStorageURI, vs...))
}

// StorageURINotIn applies the NotIn predicate on the "storage_uri" field.
func StorageURINotIn(vs ...string) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldStorageURI, vs...))
}

// StorageURIGT applies the GT predicate on the "storage_uri" field.
func StorageURIGT(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldStorageURI, v))
}

// StorageURIGTE applies the GTE predicate on the "storage_uri" field.
func StorageURIGTE(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldStorageURI, v))
}

// StorageURILT applies the LT predicate on the "storage_uri" field.
func StorageURILT(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldStorageURI, v))
}

// StorageURILTE applies the LTE predicate on the "storage_uri" field.
func StorageURILTE(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldStorageURI, v))
}

// StorageURIContains applies the Contains predicate on the "storage_uri" field.
func StorageURIContains(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldContains(FieldStorageURI, v))
}

// StorageURIHasPrefix applies the HasPrefix predicate on the "storage_uri" field.
func StorageURIHasPrefix(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldHasPrefix(FieldStorageURI, v))
}

// StorageURIHasSuffix applies the HasSuffix predicate on the "storage_uri" field.
func StorageURIHasSuffix(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldHasSuffix(FieldStorageURI, v))
}

// StorageURIEqualFold applies the EqualFold predicate on the "storage_uri" field.
func StorageURIEqualFold(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldEqualFold(FieldStorageURI, v))
}

// StorageURIContainsFold applies the ContainsFold predicate on the "storage_uri" field.
func StorageURIContainsFold(v string) predicate.FilingList {
	return predicate.FilingList(sql.FieldContainsFold(FieldStorageURI, v))
}

// ParsedEQ applies the EQ predicate on the "parsed" field.
func ParsedEQ(v bool) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldParsed, v))
}

// ParsedNEQ applies the NEQ predicate on the "parsed" field.
func ParsedNEQ(v bool) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldParsed, v))
}

// ParsedAtEQ applies the EQ predicate on the "parsed_at" field.
func ParsedAtEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldParsedAt, v))
}

// ParsedAtNEQ applies the NEQ predicate on the "parsed_at" field.
func ParsedAtNEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldParsedAt, v))
}

// ParsedAtIn applies the In predicate on the "parsed_at" field.
func ParsedAtIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldParsedAt, vs...))
}

// ParsedAtNotIn applies the NotIn predicate on the "parsed_at" field.
func ParsedAtNotIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldParsedAt, vs...))
}

// ParsedAtGT applies the GT predicate on the "parsed_at" field.
func ParsedAtGT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldParsedAt, v))
}

// ParsedAtGTE applies the GTE predicate on the "parsed_at" field.
func ParsedAtGTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldParsedAt, v))
}

// ParsedAtLT applies the LT predicate on the "parsed_at" field.
func ParsedAtLT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldParsedAt, v))
}

// ParsedAtLTE applies the LTE predicate on the "parsed_at" field.
func ParsedAtLTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldParsedAt, v))
}

// ParsedAtIsNil applies the IsNil predicate on the "parsed_at" field.
func ParsedAtIsNil() predicate.FilingList {
	return predicate.FilingList(sql.FieldIsNull(FieldParsedAt))
}

// ParsedAtNotNil applies the NotNil predicate on the "parsed_at" field.
func ParsedAtNotNil() predicate.FilingList {
	return predicate.FilingList(sql.FieldNotNull(FieldParsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FilingList {
	return predicate.FilingList(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FilingList) predicate.FilingList {
	return predicate.FilingList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FilingList) predicate.FilingList {
	return predicate.FilingList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FilingList) predicate.FilingList {
	return predicate.FilingList(sql.NotPredicates(p))
}
