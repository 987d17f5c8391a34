// Package schema generates JSON schemas from Go types and validates decoded
// configuration documents against them.
//
// Schemas are reflected with [github.com/invopop/jsonschema] and enforced with
// [github.com/santhosh-tekuri/jsonschema/v6].
package schema
