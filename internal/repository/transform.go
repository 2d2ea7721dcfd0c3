package repository

import (
	"github.com/aea-eng/aea-backend/internal/domain"
)

// columnByField is the single source of truth for field names that differ
// between the API's camelCase convention and the storage schema's snake_case
// columns. Adding a renamed field means adding one entry here; names absent
// from the table cross the boundary unchanged.
var columnByField = map[string]string{
	"passwordHash": "password_hash",
	"photoUrl":     "photo_url",
	"pageName":     "page_name",
	"displayOrder": "display_order",
	"isActive":     "is_active",
	"isRead":       "is_read",
	"imageUrl":     "image_url",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"businessName": "business_name",
}

var fieldByColumn = make(map[string]string, len(columnByField))

func init() {
	for field, column := range columnByField {
		fieldByColumn[column] = field
	}
}

// toColumns renames a domain-field payload to storage column names. Keys that
// are absent stay absent, which is what makes partial updates write only the
// provided fields; a key holding nil becomes an explicit SQL NULL. Nil input
// propagates as nil.
func toColumns(fields domain.Fields) map[string]any {
	if fields == nil {
		return nil
	}
	columns := make(map[string]any, len(fields))
	for key, value := range fields {
		column, ok := columnByField[key]
		if !ok {
			column = key
		}
		columns[column] = value
	}
	return columns
}

// toFields is the inverse of toColumns: it renames storage columns back to
// domain field names. Pure and nil-propagating.
func toFields(row map[string]any) domain.Fields {
	if row == nil {
		return nil
	}
	fields := make(domain.Fields, len(row))
	for key, value := range row {
		field, ok := fieldByColumn[key]
		if !ok {
			field = key
		}
		fields[field] = value
	}
	return fields
}
