// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finbot-vn/finbot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldJobID, v))
}

// TransactionDate applies equality check predicate on the "transaction_date" field. It's identical to TransactionDateEQ.
func TransactionDate(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldTransactionDate, v))
}

// AmountValue applies equality check predicate on the "amount_value" field. It's identical to AmountValueEQ.
func AmountValue(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldAmountValue, v))
}

// AmountCurrency applies equality check predicate on the "amount_currency" field. It's identical to AmountCurrencyEQ.
func AmountCurrency(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldAmountCurrency, v))
}

// CategoryCode applies equality check predicate on the "category_code" field. It's identical to CategoryCodeEQ.
func CategoryCode(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCategoryCode, v))
}

// CategoryName applies equality check predicate on the "category_name" field. It's identical to CategoryNameEQ.
func CategoryName(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCategoryName, v))
}

// ProcessingTime applies equality check predicate on the "processing_time" field. It's identical to ProcessingTimeEQ.
func ProcessingTime(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldProcessingTime, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldWordCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldJobID, vs...))
}

// TransactionDateEQ applies the EQ predicate on the "transaction_date" field.
func TransactionDateEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldTransactionDate, v))
}

// TransactionDateNEQ applies the NEQ predicate on the "transaction_date" field.
func TransactionDateNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldTransactionDate, v))
}

// TransactionDateIn applies the In predicate on the "transaction_date" field.
func TransactionDateIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldTransactionDate, vs...))
}

// TransactionDateNotIn applies the NotIn predicate on the "transaction_date" field.
func TransactionDateNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldTransactionDate, vs...))
}

// TransactionDateGT applies the GT predicate on the "transaction_date" field.
func TransactionDateGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldTransactionDate, v))
}

// TransactionDateGTE applies the GTE predicate on the "transaction_date" field.
func TransactionDateGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldTransactionDate, v))
}

// TransactionDateLT applies the LT predicate on the "transaction_date" field.
func TransactionDateLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldTransactionDate, v))
}

// TransactionDateLTE applies the LTE predicate on the "transaction_date" field.
func TransactionDateLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldTransactionDate, v))
}

// TransactionDateContains applies the Contains predicate on the "transaction_date" field.
func TransactionDateContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldTransactionDate, v))
}

// TransactionDateHasPrefix applies the HasPrefix predicate on the "transaction_date" field.
func TransactionDateHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldTransactionDate, v))
}

// TransactionDateHasSuffix applies the HasSuffix predicate on the "transaction_date" field.
func TransactionDateHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldTransactionDate, v))
}

// TransactionDateEqualFold applies the EqualFold predicate on the "transaction_date" field.
func TransactionDateEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldTransactionDate, v))
}

// TransactionDateContainsFold applies the ContainsFold predicate on the "transaction_date" field.
func TransactionDateContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldTransactionDate, v))
}

// AmountValueEQ applies the EQ predicate on the "amount_value" field.
func AmountValueEQ(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldAmountValue, v))
}

// AmountValueNEQ applies the NEQ predicate on the "amount_value" field.
func AmountValueNEQ(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldAmountValue, v))
}

// AmountValueIn applies the In predicate on the "amount_value" field.
func AmountValueIn(vs ...int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldAmountValue, vs...))
}

// AmountValueNotIn applies the NotIn predicate on the "amount_value" field.
func AmountValueNotIn(vs ...int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldAmountValue, vs...))
}

// AmountValueGT applies the GT predicate on the "amount_value" field.
func AmountValueGT(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldAmountValue, v))
}

// AmountValueGTE applies the GTE predicate on the "amount_value" field.
func AmountValueGTE(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldAmountValue, v))
}

// AmountValueLT applies the LT predicate on the "amount_value" field.
func AmountValueLT(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldAmountValue, v))
}

// AmountValueLTE applies the LTE predicate on the "amount_value" field.
func AmountValueLTE(v int64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldAmountValue, v))
}

// AmountCurrencyEQ applies the EQ predicate on the "amount_currency" field.
func AmountCurrencyEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldAmountCurrency, v))
}

// AmountCurrencyNEQ applies the NEQ predicate on the "amount_currency" field.
func AmountCurrencyNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldAmountCurrency, v))
}

// AmountCurrencyIn applies the In predicate on the "amount_currency" field.
func AmountCurrencyIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldAmountCurrency, vs...))
}

// AmountCurrencyNotIn applies the NotIn predicate on the "amount_currency" field.
func AmountCurrencyNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldAmountCurrency, vs...))
}

// AmountCurrencyGT applies the GT predicate on the "amount_currency" field.
func AmountCurrencyGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldAmountCurrency, v))
}

// AmountCurrencyGTE applies the GTE predicate on the "amount_currency" field.
func AmountCurrencyGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldAmountCurrency, v))
}

// AmountCurrencyLT applies the LT predicate on the "amount_currency" field.
func AmountCurrencyLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldAmountCurrency, v))
}

// AmountCurrencyLTE applies the LTE predicate on the "amount_currency" field.
func AmountCurrencyLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldAmountCurrency, v))
}

// AmountCurrencyContains applies the Contains predicate on the "amount_currency" field.
func AmountCurrencyContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldAmountCurrency, v))
}

// AmountCurrencyHasPrefix applies the HasPrefix predicate on the "amount_currency" field.
func AmountCurrencyHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldAmountCurrency, v))
}

// AmountCurrencyHasSuffix applies the HasSuffix predicate on the "amount_currency" field.
func AmountCurrencyHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldAmountCurrency, v))
}

// AmountCurrencyEqualFold applies the EqualFold predicate on the "amount_currency" field.
func AmountCurrencyEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldAmountCurrency, v))
}

// AmountCurrencyContainsFold applies the ContainsFold predicate on the "amount_currency" field.
func AmountCurrencyContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldAmountCurrency, v))
}

// CategoryCodeEQ applies the EQ predicate on the "category_code" field.
func CategoryCodeEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCategoryCode, v))
}

// CategoryCodeNEQ applies the NEQ predicate on the "category_code" field.
func CategoryCodeNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldCategoryCode, v))
}

// CategoryCodeIn applies the In predicate on the "category_code" field.
func CategoryCodeIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldCategoryCode, vs...))
}

// CategoryCodeNotIn applies the NotIn predicate on the "category_code" field.
func CategoryCodeNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldCategoryCode, vs...))
}

// CategoryCodeGT applies the GT predicate on the "category_code" field.
func CategoryCodeGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldCategoryCode, v))
}

// CategoryCodeGTE applies the GTE predicate on the "category_code" field.
func CategoryCodeGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldCategoryCode, v))
}

// CategoryCodeLT applies the LT predicate on the "category_code" field.
func CategoryCodeLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldCategoryCode, v))
}

// CategoryCodeLTE applies the LTE predicate on the "category_code" field.
func CategoryCodeLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldCategoryCode, v))
}

// CategoryCodeContains applies the Contains predicate on the "category_code" field.
func CategoryCodeContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldCategoryCode, v))
}

// CategoryCodeHasPrefix applies the HasPrefix predicate on the "category_code" field.
func CategoryCodeHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldCategoryCode, v))
}

// CategoryCodeHasSuffix applies the HasSuffix predicate on the "category_code" field.
func CategoryCodeHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldCategoryCode, v))
}

// CategoryCodeEqualFold applies the EqualFold predicate on the "category_code" field.
func CategoryCodeEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldCategoryCode, v))
}

// CategoryCodeContainsFold applies the ContainsFold predicate on the "category_code" field.
func CategoryCodeContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldCategoryCode, v))
}

// CategoryNameEQ applies the EQ predicate on the "category_name" field.
func CategoryNameEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldCategoryName, v))
}

// CategoryNameNEQ applies the NEQ predicate on the "category_name" field.
func CategoryNameNEQ(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldCategoryName, v))
}

// CategoryNameIn applies the In predicate on the "category_name" field.
func CategoryNameIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldCategoryName, vs...))
}

// CategoryNameNotIn applies the NotIn predicate on the "category_name" field.
func CategoryNameNotIn(vs ...string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldCategoryName, vs...))
}

// CategoryNameGT applies the GT predicate on the "category_name" field.
func CategoryNameGT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldCategoryName, v))
}

// CategoryNameGTE applies the GTE predicate on the "category_name" field.
func CategoryNameGTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldCategoryName, v))
}

// CategoryNameLT applies the LT predicate on the "category_name" field.
func CategoryNameLT(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldCategoryName, v))
}

// CategoryNameLTE applies the LTE predicate on the "category_name" field.
func CategoryNameLTE(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldCategoryName, v))
}

// CategoryNameContains applies the Contains predicate on the "category_name" field.
func CategoryNameContains(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContains(FieldCategoryName, v))
}

// CategoryNameHasPrefix applies the HasPrefix predicate on the "category_name" field.
func CategoryNameHasPrefix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasPrefix(FieldCategoryName, v))
}

// CategoryNameHasSuffix applies the HasSuffix predicate on the "category_name" field.
func CategoryNameHasSuffix(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldHasSuffix(FieldCategoryName, v))
}

// CategoryNameEqualFold applies the EqualFold predicate on the "category_name" field.
func CategoryNameEqualFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEqualFold(FieldCategoryName, v))
}

// CategoryNameContainsFold applies the ContainsFold predicate on the "category_name" field.
func CategoryNameContainsFold(v string) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldContainsFold(FieldCategoryName, v))
}

// ItemsIsNil applies the IsNil predicate on the "items" field.
func ItemsIsNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIsNull(FieldItems))
}

// ItemsNotNil applies the NotNil predicate on the "items" field.
func ItemsNotNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotNull(FieldItems))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotNull(FieldMeta))
}

// ProcessingTimeEQ applies the EQ predicate on the "processing_time" field.
func ProcessingTimeEQ(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldProcessingTime, v))
}

// ProcessingTimeNEQ applies the NEQ predicate on the "processing_time" field.
func ProcessingTimeNEQ(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldProcessingTime, v))
}

// ProcessingTimeIn applies the In predicate on the "processing_time" field.
func ProcessingTimeIn(vs ...float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldProcessingTime, vs...))
}

// ProcessingTimeNotIn applies the NotIn predicate on the "processing_time" field.
func ProcessingTimeNotIn(vs ...float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldProcessingTime, vs...))
}

// ProcessingTimeGT applies the GT predicate on the "processing_time" field.
func ProcessingTimeGT(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldProcessingTime, v))
}

// ProcessingTimeGTE applies the GTE predicate on the "processing_time" field.
func ProcessingTimeGTE(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldProcessingTime, v))
}

// ProcessingTimeLT applies the LT predicate on the "processing_time" field.
func ProcessingTimeLT(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldProcessingTime, v))
}

// ProcessingTimeLTE applies the LTE predicate on the "processing_time" field.
func ProcessingTimeLTE(v float64) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldProcessingTime, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.OcrResult {
	return predicate.OcrResult(sql.FieldLTE(FieldWordCount, v))
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

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.OcrJob) predicate.OcrResult {
	return predicate.OcrResult(func(s *sql.Selector) {
		step := newJobStep()
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
