// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeck holds the string denoting the deck field in the database.
	FieldDeck = "deck"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldRightCount holds the string denoting the right_count field in the database.
	FieldRightCount = "right_count"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldAsked holds the string denoting the asked field in the database.
	FieldAsked = "asked"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldDeck,
	FieldPosition,
	FieldText,
	FieldRightCount,
	FieldWrongCount,
	FieldAsked,
	FieldStreak,
	FieldDifficulty,
	FieldCategory,
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
	// DeckValidator is a validator for the "deck" field. It is called by the builders before save.
	DeckValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultRightCount holds the default value on creation for the "right_count" field.
	DefaultRightCount int
	// DefaultWrongCount holds the default value on creation for the "wrong_count" field.
	DefaultWrongCount int
	// DefaultAsked holds the default value on creation for the "asked" field.
	DefaultAsked int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeck orders the results by the deck field.
func ByDeck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeck, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByRightCount orders the results by the right_count field.
func ByRightCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRightCount, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByAsked orders the results by the asked field.
func ByAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAsked, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}
