// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EntriesColumns holds the columns for the "entries" table.
	EntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "stored_at", Type: field.TypeInt64},
	}
	// EntriesTable holds the schema information for the "entries" table.
	EntriesTable = &schema.Table{
		Name:       "entries",
		Columns:    EntriesColumns,
		PrimaryKey: []*schema.Column{EntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entry_kind",
				Unique:  false,
				Columns: []*schema.Column{EntriesColumns[2]},
			},
			{
				Name:    "entry_stored_at",
				Unique:  false,
				Columns: []*schema.Column{EntriesColumns[4]},
			},
			{
				Name:    "entry_kind_stored_at",
				Unique:  false,
				Columns: []*schema.Column{EntriesColumns[2], EntriesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EntriesTable,
	}
)

func init() {
}
