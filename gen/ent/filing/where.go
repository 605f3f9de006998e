// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldDocID, v))
}

// Prefix applies equality check predicate on the "prefix" field. It's identical to PrefixEQ.
func Prefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldPrefix, v))
}

// Last applies equality check predicate on the "last" field. It's identical to LastEQ.
func Last(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldLast, v))
}

// First applies equality check predicate on the "first" field. It's identical to FirstEQ.
func First(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFirst, v))
}

// Suffix applies equality check predicate on the "suffix" field. It's identical to SuffixEQ.
func Suffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldSuffix, v))
}

// FilingType applies equality check predicate on the "filing_type" field. It's identical to FilingTypeEQ.
func FilingType(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingType, v))
}

// StateDst applies equality check predicate on the "state_dst" field. It's identical to StateDstEQ.
func StateDst(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStateDst, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldYear, v))
}

// FilingDate applies equality check predicate on the "filing_date" field. It's identical to FilingDateEQ.
func FilingDate(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingDate, v))
}

// RawRow applies equality check predicate on the "raw_row" field. It's identical to RawRowEQ.
func RawRow(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldRawRow, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldDocID, v))
}

// PrefixEQ applies the EQ predicate on the "prefix" field.
func PrefixEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldPrefix, v))
}

// PrefixNEQ applies the NEQ predicate on the "prefix" field.
func PrefixNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldPrefix, v))
}

// PrefixIn applies the In predicate on the "prefix" field.
func PrefixIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldPrefix, vs...))
}

// PrefixNotIn applies the NotIn predicate on the "prefix" field.
func PrefixNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldPrefix, vs...))
}

// PrefixGT applies the GT predicate on the "prefix" field.
func PrefixGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldPrefix, v))
}

// PrefixGTE applies the GTE predicate on the "prefix" field.
func PrefixGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldPrefix, v))
}

// PrefixLT applies the LT predicate on the "prefix" field.
func PrefixLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldPrefix, v))
}

// PrefixLTE applies the LTE predicate on the "prefix" field.
func PrefixLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldPrefix, v))
}

// PrefixContains applies the Contains predicate on the "prefix" field.
func PrefixContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldPrefix, v))
}

// PrefixHasPrefix applies the HasPrefix predicate on the "prefix" field.
func PrefixHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldPrefix, v))
}

// PrefixHasSuffix applies the HasSuffix predicate on the "prefix" field.
func PrefixHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldPrefix, v))
}

// PrefixIsNil applies the IsNil predicate on the "prefix" field.
func PrefixIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldPrefix))
}

// PrefixNotNil applies the NotNil predicate on the "prefix" field.
func PrefixNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldPrefix))
}

// PrefixEqualFold applies the EqualFold predicate on the "prefix" field.
func PrefixEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldPrefix, v))
}

// PrefixContainsFold applies the ContainsFold predicate on the "prefix" field.
func PrefixContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldPrefix, v))
}

// LastEQ applies the EQ predicate on the "last" field.
func LastEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldLast, v))
}

// LastNEQ applies the NEQ predicate on the "last" field.
func LastNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldLast, v))
}

// LastIn applies the In predicate on the "last" field.
func LastIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldLast, vs...))
}

// LastNotIn applies the NotIn predicate on the "last" field.
func LastNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldLast, vs...))
}

// LastGT applies the GT predicate on the "last" field.
func LastGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldLast, v))
}

// LastGTE applies the GTE predicate on the "last" field.
func LastGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldLast, v))
}

// LastLT applies the LT predicate on the "last" field.
func LastLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldLast, v))
}

// LastLTE applies the LTE predicate on the "last" field.
func LastLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldLast, v))
}

// LastContains applies the Contains predicate on the "last" field.
func LastContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldLast, v))
}

// LastHasPrefix applies the HasPrefix predicate on the "last" field.
func LastHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldLast, v))
}

// LastHasSuffix applies the HasSuffix predicate on the "last" field.
func LastHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldLast, v))
}

// LastEqualFold applies the EqualFold predicate on the "last" field.
func LastEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldLast, v))
}

// LastContainsFold applies the ContainsFold predicate on the "last" field.
func LastContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldLast, v))
}

// FirstEQ applies the EQ predicate on the "first" field.
func FirstEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFirst, v))
}

// FirstNEQ applies the NEQ predicate on the "first" field.
func FirstNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFirst, v))
}

// FirstIn applies the In predicate on the "first" field.
func FirstIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFirst, vs...))
}

// FirstNotIn applies the NotIn predicate on the "first" field.
func FirstNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFirst, vs...))
}

// FirstGT applies the GT predicate on the "first" field.
func FirstGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFirst, v))
}

// FirstGTE applies the GTE predicate on the "first" field.
func FirstGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFirst, v))
}

// FirstLT applies the LT predicate on the "first" field.
func FirstLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFirst, v))
}

// FirstLTE applies the LTE predicate on the "first" field.
func FirstLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFirst, v))
}

// FirstContains applies the Contains predicate on the "first" field.
func FirstContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldFirst, v))
}

// FirstHasPrefix applies the HasPrefix predicate on the "first" field.
func FirstHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldFirst, v))
}

// FirstHasSuffix applies the HasSuffix predicate on the "first" field.
func FirstHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldFirst, v))
}

// FirstIsNil applies the IsNil predicate on the "first" field.
func FirstIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldFirst))
}

// FirstNotNil applies the NotNil predicate on the "first" field.
func FirstNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldFirst))
}

// FirstEqualFold applies the EqualFold predicate on the "first" field.
func FirstEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldFirst, v))
}

// FirstContainsFold applies the ContainsFold predicate on the "first" field.
func FirstContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldFirst, v))
}

// SuffixEQ applies the EQ predicate on the "suffix" field.
func SuffixEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldSuffix, v))
}

// SuffixNEQ applies the NEQ predicate on the "suffix" field.
func SuffixNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldSuffix, v))
}

// SuffixIn applies the In predicate on the "suffix" field.
func SuffixIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldSuffix, vs...))
}

// SuffixNotIn applies the NotIn predicate on the "suffix" field.
func SuffixNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldSuffix, vs...))
}

// SuffixGT applies the GT predicate on the "suffix" field.
func SuffixGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldSuffix, v))
}

// SuffixGTE applies the GTE predicate on the "suffix" field.
func SuffixGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldSuffix, v))
}

// SuffixLT applies the LT predicate on the "suffix" field.
func SuffixLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldSuffix, v))
}

// SuffixLTE applies the LTE predicate on the "suffix" field.
func SuffixLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldSuffix, v))
}

// SuffixContains applies the Contains predicate on the "suffix" field.
func SuffixContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldSuffix, v))
}

// SuffixHasPrefix applies the HasPrefix predicate on the "suffix" field.
func SuffixHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldSuffix, v))
}

// SuffixHasSuffix applies the HasSuffix predicate on the "suffix" field.
func SuffixHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldSuffix, v))
}

// SuffixIsNil applies the IsNil predicate on the "suffix" field.
func SuffixIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldSuffix))
}

// SuffixNotNil applies the NotNil predicate on the "suffix" field.
func SuffixNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldSuffix))
}

// SuffixEqualFold applies the EqualFold predicate on the "suffix" field.
func SuffixEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldSuffix, v))
}

// SuffixContainsFold applies the ContainsFold predicate on the "suffix" field.
func SuffixContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldSuffix, v))
}

// FilingTypeEQ applies the EQ predicate on the "filing_type" field.
func FilingTypeEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingType, v))
}

// FilingTypeNEQ applies the NEQ predicate on the "filing_type" field.
func FilingTypeNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFilingType, v))
}

// FilingTypeIn applies the In predicate on the "filing_type" field.
func FilingTypeIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFilingType, vs...))
}

// FilingTypeNotIn applies the NotIn predicate on the "filing_type" field.
func FilingTypeNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFilingType, vs...))
}

// FilingTypeGT applies the GT predicate on the "filing_type" field.
func FilingTypeGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFilingType, v))
}

// FilingTypeGTE applies the GTE predicate on the "filing_type" field.
func FilingTypeGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFilingType, v))
}

// FilingTypeLT applies the LT predicate on the "filing_type" field.
func FilingTypeLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFilingType, v))
}

// FilingTypeLTE applies the LTE predicate on the "filing_type" field.
func FilingTypeLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFilingType, v))
}

// FilingTypeContains applies the Contains predicate on the "filing_type" field.
func FilingTypeContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldFilingType, v))
}

// FilingTypeHasPrefix applies the HasPrefix predicate on the "filing_type" field.
func FilingTypeHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldFilingType, v))
}

// FilingTypeHasSuffix applies the HasSuffix predicate on the "filing_type" field.
func FilingTypeHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldFilingType, v))
}

// FilingTypeEqualFold applies the EqualFold predicate on the "filing_type" field.
func FilingTypeEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldFilingType, v))
}

// FilingTypeContainsFold applies the ContainsFold predicate on the "filing_type" field.
func FilingTypeContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldFilingType, v))
}

// StateDstEQ applies the EQ predicate on the "state_dst" field.
func StateDstEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStateDst, v))
}

// StateDstNEQ applies the NEQ predicate on the "state_dst" field.
func StateDstNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStateDst, v))
}

// StateDstIn applies the In predicate on the "state_dst" field.
func StateDstIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStateDst, vs...))
}

// StateDstNotIn applies the NotIn predicate on the "state_dst" field.
func StateDstNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStateDst, vs...))
}

// StateDstGT applies the GT predicate on the "state_dst" field.
func StateDstGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStateDst, v))
}

// StateDstGTE applies the GTE predicate on the "state_dst" field.
func StateDstGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStateDst, v))
}

// StateDstLT applies the LT predicate on the "state_dst" field.
func StateDstLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStateDst, v))
}

// StateDstLTE applies the LTE predicate on the "state_dst" field.
func StateDstLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStateDst, v))
}

// StateDstContains applies the Contains predicate on the "state_dst" field.
func StateDstContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStateDst, v))
}

// StateDstHasPrefix applies the HasPrefix predicate on the "state_dst" field.
func StateDstHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStateDst, v))
}

// StateDstHasSuffix applies the HasSuffix predicate on the "state_dst" field.
func StateDstHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStateDst, v))
}

// StateDstIsNil applies the IsNil predicate on the "state_dst" field.
func StateDstIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldStateDst))
}

// StateDstNotNil applies the NotNil predicate on the "state_dst" field.
func StateDstNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldStateDst))
}

// StateDstEqualFold applies the EqualFold predicate on the "state_dst" field.
func StateDstEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStateDst, v))
}

// StateDstContainsFold applies the ContainsFold predicate on the "state_dst" field.
func StateDstContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStateDst, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldYear, v))
}

// FilingDateEQ applies the EQ predicate on the "filing_date" field.
func FilingDateEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingDate, v))
}

// FilingDateNEQ applies the NEQ predicate on the "filing_date" field.
func FilingDateNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFilingDate, v))
}

// FilingDateIn applies the In predicate on the "filing_date" field.
func FilingDateIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFilingDate, vs...))
}

// FilingDateNotIn applies the NotIn predicate on the "filing_date" field.
func FilingDateNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFilingDate, vs...))
}

// FilingDateGT applies the GT predicate on the "filing_date" field.
func FilingDateGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFilingDate, v))
}

// FilingDateGTE applies the GTE predicate on the "filing_date" field.
func FilingDateGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFilingDate, v))
}

// FilingDateLT applies the LT predicate on the "filing_date" field.
func FilingDateLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFilingDate, v))
}

// FilingDateLTE applies the LTE predicate on the "filing_date" field.
func FilingDateLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFilingDate, v))
}

// RawRowEQ applies the EQ predicate on the "raw_row" field.
func RawRowEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldRawRow, v))
}

// RawRowNEQ applies the NEQ predicate on the "raw_row" field.
func RawRowNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldRawRow, v))
}

// RawRowIn applies the In predicate on the "raw_row" field.
func RawRowIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldRawRow, vs...))
}

// RawRowNotIn applies the NotIn predicate on the "raw_row" field.
func RawRowNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldRawRow, vs...))
}

// RawRowGT applies the GT predicate on the "raw_row" field.
func RawRowGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldRawRow, v))
}

// RawRowGTE applies the GTE predicate on the "raw_row" field.
func RawRowGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldRawRow, v))
}

// RawRowLT applies the LT predicate on the "raw_row" field.
func RawRowLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldRawRow, v))
}

// RawRowLTE applies the LTE predicate on the "raw_row" field.
func RawRowLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldRawRow, v))
}

// RawRowContains applies the Contains predicate on the "raw_row" field.
func RawRowContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldRawRow, v))
}

// RawRowHasPrefix applies the HasPrefix predicate on the "raw_row" field.
func RawRowHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldRawRow, v))
}

// RawRowHasSuffix applies the HasSuffix predicate on the "raw_row" field.
func RawRowHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldRawRow, v))
}

// RawRowEqualFold applies the EqualFold predicate on the "raw_row" field.
func RawRowEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldRawRow, v))
}

// RawRowContainsFold applies the ContainsFold predicate on the "raw_row" field.
func RawRowContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldRawRow, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.NotPredicates(p))
}
