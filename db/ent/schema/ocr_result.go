package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/db/ent/schema/utils"
)

type OcrResult struct{ ent.Schema }

func (OcrResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OcrResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Unique(),
		// canonical expense fields
		field.String("transaction_date").NotEmpty().MaxLen(10), // YYYY-MM-DD
		field.Int64("amount_value").NonNegative(),
		field.String("amount_currency").Default("VND").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("category_code").NotEmpty().
			Validate(utils.EnumValidator(constants.CategoryCodes()...)),
		field.String("category_name").NotEmpty(),
		field.JSON("items", json.RawMessage{}).Optional(),
		field.JSON("meta", json.RawMessage{}).Optional(),
		// processing info
		field.Float("processing_time"), // seconds
		field.Int("word_count").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (OcrResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", OcrJob.Type).
			Ref("result").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (OcrResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("created_at"),
	}
}
