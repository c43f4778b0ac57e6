// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
		},
	}
	// OcrJobsColumns holds the columns for the "ocr_jobs" table.
	OcrJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "content_type", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "hints", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// OcrJobsTable holds the schema information for the "ocr_jobs" table.
	OcrJobsTable = &schema.Table{
		Name:       "ocr_jobs",
		Columns:    OcrJobsColumns,
		PrimaryKey: []*schema.Column{OcrJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_jobs_sessions_ocr_jobs",
				Columns:    []*schema.Column{OcrJobsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ocr_jobs_users_ocr_jobs",
				Columns:    []*schema.Column{OcrJobsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrjob_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[11], OcrJobsColumns[8]},
			},
			{
				Name:    "ocrjob_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[12], OcrJobsColumns[6]},
			},
		},
	}
	// OcrResultsColumns holds the columns for the "ocr_results" table.
	OcrResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "transaction_date", Type: field.TypeString, Size: 10},
		{Name: "amount_value", Type: field.TypeInt64},
		{Name: "amount_currency", Type: field.TypeString, Default: "VND", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "category_code", Type: field.TypeString},
		{Name: "category_name", Type: field.TypeString},
		{Name: "items", Type: field.TypeJSON, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_time", Type: field.TypeFloat64},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
	}
	// OcrResultsTable holds the schema information for the "ocr_results" table.
	OcrResultsTable = &schema.Table{
		Name:       "ocr_results",
		Columns:    OcrResultsColumns,
		PrimaryKey: []*schema.Column{OcrResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_results_ocr_jobs_result",
				Columns:    []*schema.Column{OcrResultsColumns[11]},
				RefColumns: []*schema.Column{OcrJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrresult_job_id",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[11]},
			},
			{
				Name:    "ocrresult_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[10]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "VND", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "category_code", Type: field.TypeString},
		{Name: "category_name", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_users_transactions",
				Columns:    []*schema.Column{TransactionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_user_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9], TransactionsColumns[1]},
			},
			{
				Name:    "transaction_user_id_category_code",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9], TransactionsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionsTable,
		MessagesTable,
		OcrJobsTable,
		OcrResultsTable,
		TransactionsTable,
		UsersTable,
	}
)

func init() {
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.Annotation = &entsql.Annotation{
		Table: "messages",
	}
	OcrJobsTable.ForeignKeys[0].RefTable = SessionsTable
	OcrJobsTable.ForeignKeys[1].RefTable = UsersTable
	OcrJobsTable.Annotation = &entsql.Annotation{
		Table: "ocr_jobs",
	}
	OcrResultsTable.ForeignKeys[0].RefTable = OcrJobsTable
	OcrResultsTable.Annotation = &entsql.Annotation{
		Table: "ocr_results",
	}
	TransactionsTable.ForeignKeys[0].RefTable = UsersTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
