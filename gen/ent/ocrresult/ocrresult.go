// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ocrresult type in the database.
	Label = "ocr_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTransactionDate holds the string denoting the transaction_date field in the database.
	FieldTransactionDate = "transaction_date"
	// FieldAmountValue holds the string denoting the amount_value field in the database.
	FieldAmountValue = "amount_value"
	// FieldAmountCurrency holds the string denoting the amount_currency field in the database.
	FieldAmountCurrency = "amount_currency"
	// FieldCategoryCode holds the string denoting the category_code field in the database.
	FieldCategoryCode = "category_code"
	// FieldCategoryName holds the string denoting the category_name field in the database.
	FieldCategoryName = "category_name"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldProcessingTime holds the string denoting the processing_time field in the database.
	FieldProcessingTime = "processing_time"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the ocrresult in the database.
	Table = "ocr_results"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "ocr_results"
	// JobInverseTable is the table name for the OcrJob entity.
	// It exists in this package in order to avoid circular dependency with the "ocrjob" package.
	JobInverseTable = "ocr_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for ocrresult fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldTransactionDate,
	FieldAmountValue,
	FieldAmountCurrency,
	FieldCategoryCode,
	FieldCategoryName,
	FieldItems,
	FieldMeta,
	FieldProcessingTime,
	FieldWordCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TransactionDateValidator is a validator for the "transaction_date" field. It is called by the builders before save.
	TransactionDateValidator func(string) error
	// AmountValueValidator is a validator for the "amount_value" field. It is called by the builders before save.
	AmountValueValidator func(int64) error
	// DefaultAmountCurrency holds the default value on creation for the "amount_currency" field.
	DefaultAmountCurrency string
	// CategoryCodeValidator is a validator for the "category_code" field. It is called by the builders before save.
	CategoryCodeValidator func(string) error
	// CategoryNameValidator is a validator for the "category_name" field. It is called by the builders before save.
	CategoryNameValidator func(string) error
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OcrResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTransactionDate orders the results by the transaction_date field.
func ByTransactionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionDate, opts...).ToFunc()
}

// ByAmountValue orders the results by the amount_value field.
func ByAmountValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountValue, opts...).ToFunc()
}

// ByAmountCurrency orders the results by the amount_currency field.
func ByAmountCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountCurrency, opts...).ToFunc()
}

// ByCategoryCode orders the results by the category_code field.
func ByCategoryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryCode, opts...).ToFunc()
}

// ByCategoryName orders the results by the category_name field.
func ByCategoryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryName, opts...).ToFunc()
}

// ByProcessingTime orders the results by the processing_time field.
func ByProcessingTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTime, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
