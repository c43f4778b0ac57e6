// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finbot-vn/finbot/db/ent/schema"
	"github.com/finbot-vn/finbot/gen/ent/chatsession"
	"github.com/finbot-vn/finbot/gen/ent/message"
	"github.com/finbot-vn/finbot/gen/ent/ocrjob"
	"github.com/finbot-vn/finbot/gen/ent/ocrresult"
	"github.com/finbot-vn/finbot/gen/ent/transaction"
	"github.com/finbot-vn/finbot/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[3].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[4].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chatsessionDescID is the schema descriptor for id field.
	chatsessionDescID := chatsessionFields[0].Descriptor()
	// chatsession.DefaultID holds the default value on creation for the id field.
	chatsession.DefaultID = chatsessionDescID.Default.(func() uuid.UUID)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[3].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = func() func(string) error {
		validators := messageDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageFields[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	ocrjobFields := schema.OcrJob{}.Fields()
	_ = ocrjobFields
	// ocrjobDescOriginalFilename is the schema descriptor for original_filename field.
	ocrjobDescOriginalFilename := ocrjobFields[3].Descriptor()
	// ocrjob.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	ocrjob.OriginalFilenameValidator = ocrjobDescOriginalFilename.Validators[0].(func(string) error)
	// ocrjobDescContentType is the schema descriptor for content_type field.
	ocrjobDescContentType := ocrjobFields[5].Descriptor()
	// ocrjob.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	ocrjob.ContentTypeValidator = ocrjobDescContentType.Validators[0].(func(string) error)
	// ocrjobDescFormat is the schema descriptor for format field.
	ocrjobDescFormat := ocrjobFields[6].Descriptor()
	// ocrjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	ocrjob.FormatValidator = func() func(string) error {
		validators := ocrjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrjobDescStatus is the schema descriptor for status field.
	ocrjobDescStatus := ocrjobFields[8].Descriptor()
	// ocrjob.DefaultStatus holds the default value on creation for the status field.
	ocrjob.DefaultStatus = ocrjobDescStatus.Default.(string)
	// ocrjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ocrjob.StatusValidator = ocrjobDescStatus.Validators[0].(func(string) error)
	// ocrjobDescCreatedAt is the schema descriptor for created_at field.
	ocrjobDescCreatedAt := ocrjobFields[10].Descriptor()
	// ocrjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrjob.DefaultCreatedAt = ocrjobDescCreatedAt.Default.(func() time.Time)
	// ocrjobDescID is the schema descriptor for id field.
	ocrjobDescID := ocrjobFields[0].Descriptor()
	// ocrjob.DefaultID holds the default value on creation for the id field.
	ocrjob.DefaultID = ocrjobDescID.Default.(func() uuid.UUID)
	ocrresultFields := schema.OcrResult{}.Fields()
	_ = ocrresultFields
	// ocrresultDescTransactionDate is the schema descriptor for transaction_date field.
	ocrresultDescTransactionDate := ocrresultFields[2].Descriptor()
	// ocrresult.TransactionDateValidator is a validator for the "transaction_date" field. It is called by the builders before save.
	ocrresult.TransactionDateValidator = func() func(string) error {
		validators := ocrresultDescTransactionDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(transaction_date string) error {
			for _, fn := range fns {
				if err := fn(transaction_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescAmountValue is the schema descriptor for amount_value field.
	ocrresultDescAmountValue := ocrresultFields[3].Descriptor()
	// ocrresult.AmountValueValidator is a validator for the "amount_value" field. It is called by the builders before save.
	ocrresult.AmountValueValidator = ocrresultDescAmountValue.Validators[0].(func(int64) error)
	// ocrresultDescAmountCurrency is the schema descriptor for amount_currency field.
	ocrresultDescAmountCurrency := ocrresultFields[4].Descriptor()
	// ocrresult.DefaultAmountCurrency holds the default value on creation for the amount_currency field.
	ocrresult.DefaultAmountCurrency = ocrresultDescAmountCurrency.Default.(string)
	// ocrresultDescCategoryCode is the schema descriptor for category_code field.
	ocrresultDescCategoryCode := ocrresultFields[5].Descriptor()
	// ocrresult.CategoryCodeValidator is a validator for the "category_code" field. It is called by the builders before save.
	ocrresult.CategoryCodeValidator = func() func(string) error {
		validators := ocrresultDescCategoryCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category_code string) error {
			for _, fn := range fns {
				if err := fn(category_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescCategoryName is the schema descriptor for category_name field.
	ocrresultDescCategoryName := ocrresultFields[6].Descriptor()
	// ocrresult.CategoryNameValidator is a validator for the "category_name" field. It is called by the builders before save.
	ocrresult.CategoryNameValidator = ocrresultDescCategoryName.Validators[0].(func(string) error)
	// ocrresultDescWordCount is the schema descriptor for word_count field.
	ocrresultDescWordCount := ocrresultFields[10].Descriptor()
	// ocrresult.DefaultWordCount holds the default value on creation for the word_count field.
	ocrresult.DefaultWordCount = ocrresultDescWordCount.Default.(int)
	// ocrresultDescCreatedAt is the schema descriptor for created_at field.
	ocrresultDescCreatedAt := ocrresultFields[11].Descriptor()
	// ocrresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrresult.DefaultCreatedAt = ocrresultDescCreatedAt.Default.(func() time.Time)
	// ocrresultDescID is the schema descriptor for id field.
	ocrresultDescID := ocrresultFields[0].Descriptor()
	// ocrresult.DefaultID holds the default value on creation for the id field.
	ocrresult.DefaultID = ocrresultDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescAmount is the schema descriptor for amount field.
	transactionDescAmount := transactionFields[3].Descriptor()
	// transaction.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	transaction.AmountValidator = transactionDescAmount.Validators[0].(func(int64) error)
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[4].Descriptor()
	// transaction.DefaultCurrency holds the default value on creation for the currency field.
	transaction.DefaultCurrency = transactionDescCurrency.Default.(string)
	// transactionDescCategoryCode is the schema descriptor for category_code field.
	transactionDescCategoryCode := transactionFields[5].Descriptor()
	// transaction.CategoryCodeValidator is a validator for the "category_code" field. It is called by the builders before save.
	transaction.CategoryCodeValidator = func() func(string) error {
		validators := transactionDescCategoryCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category_code string) error {
			for _, fn := range fns {
				if err := fn(category_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescCategoryName is the schema descriptor for category_name field.
	transactionDescCategoryName := transactionFields[6].Descriptor()
	// transaction.CategoryNameValidator is a validator for the "category_name" field. It is called by the builders before save.
	transaction.CategoryNameValidator = transactionDescCategoryName.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[8].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionFields[9].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
