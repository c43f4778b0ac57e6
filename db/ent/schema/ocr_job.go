package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/finbot-vn/finbot/constants"
	"github.com/finbot-vn/finbot/db/ent/schema/utils"
)

type OcrJob struct{ ent.Schema }

func (OcrJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_jobs"},
	}
}

func (OcrJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
		field.String("original_filename").NotEmpty(),
		field.Int64("file_size"),
		field.String("content_type").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.JSON("hints", json.RawMessage{}).Optional(),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (OcrJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("ocr_jobs").
			Field("session_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("ocr_jobs").
			Field("user_id").
			Unique().
			Required(),
		edge.To("result", OcrResult.Type).
			Unique(),
	}
}

func (OcrJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("user_id", "status"),
	}
}
