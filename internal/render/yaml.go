package render

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/mmaictl/internal/record"
)

func writeYAML(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(Structure(d))); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// yamlNode builds a node tree so map keys keep their record order.
func yamlNode(v record.Value) *yaml.Node {
	switch v.Kind() {
	case record.KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields() {
			n.Content = append(n.Content, scalar("!!str", f.Key), yamlNode(f.Value))
		}
		return n
	case record.KindList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case record.KindString:
		s, _ := v.Text()
		return scalar("!!str", s)
	case record.KindNumber:
		lit, _ := v.Text()
		if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return scalar("!!int", lit)
		}
		return scalar("!!float", lit)
	case record.KindBool:
		return scalar("!!bool", v.Display())
	default:
		return scalar("!!null", "null")
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
