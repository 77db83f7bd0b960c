package record

// MissingText is how a Missing value reads in text output.
const MissingText = "<none>"

// Display renders v for line-oriented output: strings raw, numbers as sent,
// booleans and null as their JSON literals, Missing as MissingText, and
// maps or lists as compact JSON.
func (v Value) Display() string {
	switch v.kind {
	case KindMissing:
		return MissingText
	case KindNull:
		return "null"
	case KindString, KindNumber:
		return v.text
	case KindBool:
		if v.flag {
			return "true"
		}
		return "false"
	default:
		return v.Compact()
	}
}
