package instrumentation

import "strings"

// IDPlaceholder replaces identifier segments in route labels.
const IDPlaceholder = "{id}"

// collections lists the fixed path segments of the control-plane API.
// Anything else in a request path is a name or uid.
var collections = map[string]struct{}{
	"clusters":    {},
	"departments": {},
	"nodeGroups":  {},
	"nodegroups":  {},
	"nodes":       {},
	"projects":    {},
	"workloads":   {},
	"billing":     {},
	"resume":      {},
	"suspend":     {},
}

// NormalizeRoute reduces a request path to a low-cardinality route label by
// replacing every identifier segment with IDPlaceholder. Query strings and
// leading or trailing slashes are dropped.
//
// Examples:
//
//	NormalizeRoute("clusters")                                // "clusters"
//	NormalizeRoute("clusters/7f3a/departments")               // "clusters/{id}/departments"
//	NormalizeRoute("/projects/ml/workloads/train-1/resume")   // "projects/{id}/workloads/{id}/resume"
func NormalizeRoute(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if _, ok := collections[seg]; !ok {
			segments[i] = IDPlaceholder
		}
	}
	return strings.Join(segments, "/")
}
