package resource

import "github.com/giantswarm/mmaictl/internal/record"

// CreateBody builds the payload for an add command. An empty description is
// sent as null.
func CreateBody(name, description string) record.Value {
	desc := record.Null()
	if description != "" {
		desc = record.String(description)
	}
	return record.Map(
		record.F("name", record.String(name)),
		record.F("description", desc),
	)
}

// Property is one key=value pair given on the command line.
type Property struct {
	Key   string
	Value record.Value
}

// UpdateBody builds the payload for an update command from the dedicated
// flags and free-form properties, in that order. Later keys override earlier
// ones. The second result is false when nothing would be updated.
func UpdateBody(newName, description string, props []Property) (record.Value, bool) {
	var fields []record.Field
	if newName != "" {
		fields = append(fields, record.F("name", record.String(newName)))
	}
	if description != "" {
		fields = append(fields, record.F("description", record.String(description)))
	}
	for _, p := range props {
		fields = append(fields, record.F(p.Key, p.Value))
	}
	if len(fields) == 0 {
		return record.Missing(), false
	}
	return record.Map(fields...), true
}
