// Package record provides the value model for control-plane resources.
//
// Resources arrive as arbitrary JSON objects whose schema the client does not
// own. Instead of passing map[string]interface{} around, every resource is held
// as a [Value]: a small immutable tagged union of missing, null, string,
// number, bool, map and list. Maps keep the key order of the response so that
// flattened and rendered output follows the server's field order.
//
// Decoding uses github.com/buger/jsonparser so that object keys are visited in
// document order:
//
//	v, err := record.Parse(body)
//	name := v.StringField("name")
//	cores, ok := v.Lookup([]string{"cpu", "cores"})
//
// Numbers are kept as their literal text and written back unchanged.
package record
