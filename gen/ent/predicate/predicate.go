// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// OcrJob is the predicate function for ocrjob builders.
type OcrJob func(*sql.Selector)

// OcrResult is the predicate function for ocrresult builders.
type OcrResult func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
