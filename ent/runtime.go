// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/abhisek/quizdeck/ent/entry"
	"github.com/abhisek/quizdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entryFields := schema.Entry{}.Fields()
	_ = entryFields
	// entryDescKey is the schema descriptor for key field.
	entryDescKey := entryFields[0].Descriptor()
	// entry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	entry.KeyValidator = entryDescKey.Validators[0].(func(string) error)
	// entryDescKind is the schema descriptor for kind field.
	entryDescKind := entryFields[1].Descriptor()
	// entry.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	entry.KindValidator = entryDescKind.Validators[0].(func(string) error)
}
