// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/google/uuid"
)

// OcrResult is the model entity for the OcrResult schema.
type OcrResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// TransactionDate holds the value of the "transaction_date" field.
	TransactionDate string `json:"transaction_date,omitempty"`
	// AmountValue holds the value of the "amount_value" field.
	AmountValue int64 `json:"amount_value,omitempty"`
	// AmountCurrency holds the value of the "amount_currency" field.
	AmountCurrency string `json:"amount_currency,omitempty"`
	// CategoryCode holds the value of the "category_code" field.
	CategoryCode string `json:"category_code,omitempty"`
	// CategoryName holds the value of the "category_name" field.
	CategoryName string `json:"category_name,omitempty"`
	// Items holds the value of the "items" field.
	Items json.RawMessage `json:"items,omitempty"`
	// Meta holds the value of the "meta" field.
	Meta json.RawMessage `json:"meta,omitempty"`
	// ProcessingTime holds the value of the "processing_time" field.
	ProcessingTime float64 `json:"processing_time,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OcrResultQuery when eager-loading is set.
	Edges        OcrResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OcrResultEdges holds the relations/edges for other nodes in the graph.
type OcrResultEdges struct {
	// Job holds the value of the job edge.
	Job *OcrJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OcrResultEdges) JobOrErr() (*OcrJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ocrjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OcrResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldItems, ocrresult.FieldMeta:
			values[i] = new([]byte)
		case ocrresult.FieldProcessingTime:
			values[i] = new(sql.NullFloat64)
		case ocrresult.FieldAmountValue, ocrresult.FieldWordCount:
			values[i] = new(sql.NullInt64)
		case ocrresult.FieldTransactionDate, ocrresult.FieldAmountCurrency, ocrresult.FieldCategoryCode, ocrresult.FieldCategoryName:
			values[i] = new(sql.NullString)
		case ocrresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case ocrresult.FieldID, ocrresult.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OcrResult fields.
func (_m *OcrResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ocrresult.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case ocrresult.FieldTransactionDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_date", values[i])
			} else if value.Valid {
				_m.TransactionDate = value.String
			}
		case ocrresult.FieldAmountValue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_value", values[i])
			} else if value.Valid {
				_m.AmountValue = value.Int64
			}
		case ocrresult.FieldAmountCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field amount_currency", values[i])
			} else if value.Valid {
				_m.AmountCurrency = value.String
			}
		case ocrresult.FieldCategoryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_code", values[i])
			} else if value.Valid {
				_m.CategoryCode = value.String
			}
		case ocrresult.FieldCategoryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_name", values[i])
			} else if value.Valid {
				_m.CategoryName = value.String
			}
		case ocrresult.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case ocrresult.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case ocrresult.FieldProcessingTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time", values[i])
			} else if value.Valid {
				_m.ProcessingTime = value.Float64
			}
		case ocrresult.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case ocrresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OcrResult.
// This includes values selected through modifiers, order, etc.
func (_m *OcrResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the OcrResult entity.
func (_m *OcrResult) QueryJob() *OcrJobQuery {
	return NewOcrResultClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this OcrResult.
// Note that you need to call OcrResult.Unwrap() before calling this method if this OcrResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OcrResult) Update() *OcrResultUpdateOne {
	return NewOcrResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OcrResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OcrResult) Unwrap() *OcrResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OcrResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OcrResult) String() string {
	var builder strings.Builder
	builder.WriteString("OcrResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("transaction_date=")
	builder.WriteString(_m.TransactionDate)
	builder.WriteString(", ")
	builder.WriteString("amount_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountValue))
	builder.WriteString(", ")
	builder.WriteString("amount_currency=")
	builder.WriteString(_m.AmountCurrency)
	builder.WriteString(", ")
	builder.WriteString("category_code=")
	builder.WriteString(_m.CategoryCode)
	builder.WriteString(", ")
	builder.WriteString("category_name=")
	builder.WriteString(_m.CategoryName)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("processing_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTime))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OcrResults is a parsable slice of OcrResult.
type OcrResults []*OcrResult
