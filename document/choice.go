package document

import (
	"encoding/xml"
	"log/slog"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"

	"github.com/ardnew/scenic/pkg"
)

// Variant is implemented by every alternative of a choice group. Tag is the
// element name the alternative is encoded under.
type Variant interface {
	Tag() string
}

// Kinds describes the alternatives of one choice group. Implementations are
// empty structs used only as type arguments.
type Kinds[V Variant] interface {
	// New returns a new zero alternative for tag.
	New(tag string) (V, bool)
	// Tags lists the element names of all alternatives.
	Tags() []string
}

// Choice holds exactly one alternative of a choice group. The alternative is
// encoded inline: in XML as a child element named by its tag (use the field
// tag `xml:",any"`), in YAML as a key named by its tag (use `yaml:",inline"`).
//
// A Choice with a nil Value is absent and encodes nothing.
type Choice[V Variant, K Kinds[V]] struct {
	Value V
}

// IsZero reports whether no alternative is set.
func (c Choice[V, K]) IsZero() bool { return isNil(c.Value) }

// Tag returns the element name of the held alternative, or "" when absent.
func (c Choice[V, K]) Tag() string {
	if c.IsZero() {
		return ""
	}

	return c.Value.Tag()
}

// MarshalXML implements xml.Marshaler. The start element is ignored; the
// alternative is written under its own tag.
func (c Choice[V, K]) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	if c.IsZero() {
		return nil
	}

	return encodeVariant(e, c.Value)
}

// UnmarshalXML implements xml.Unmarshaler.
func (c *Choice[V, K]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if !c.IsZero() {
		return ErrChoiceCardinality.With(
			slog.String("have", c.Value.Tag()),
			slog.String("extra", start.Name.Local),
		)
	}

	v, err := decodeVariant[V, K](d, start)
	if err != nil {
		return err
	}

	c.Value = v

	return nil
}

// MarshalYAML encodes the alternative as a single-key mapping.
func (c Choice[V, K]) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, nil
	}

	return yaml.MapSlice{{Key: c.Value.Tag(), Value: c.Value}}, nil
}

// UnmarshalYAML decodes the one key of node that names an alternative. Other
// keys are ignored so the choice can be inlined into its parent mapping.
func (c *Choice[V, K]) UnmarshalYAML(node ast.Node) error {
	var kinds K

	var found []*ast.MappingValueNode

	for _, mv := range mappingValues(node) {
		if slices.Contains(kinds.Tags(), keyOf(mv)) {
			found = append(found, mv)
		}
	}

	switch len(found) {
	case 0:
		*c = Choice[V, K]{}

		return nil

	case 1:
		v, err := decodeYAMLVariant[V, K](keyOf(found[0]), found[0].Value)
		if err != nil {
			return err
		}

		c.Value = v

		return nil

	default:
		tags := make([]string, len(found))
		for i, mv := range found {
			tags[i] = keyOf(mv)
		}

		slices.Sort(tags)

		return ErrChoiceCardinality.With(slog.Any("alternatives", tags))
	}
}

// Seq is an ordered sequence of alternatives of one choice group, possibly
// mixing kinds. Order is preserved across encoding.
//
// In XML the alternatives are child elements (use `xml:",any"`); in YAML Seq
// is a list of single-key mappings.
type Seq[V Variant, K Kinds[V]] []V

// MarshalXML implements xml.Marshaler.
func (s Seq[V, K]) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	for _, v := range s {
		if isNil(v) {
			continue
		}

		if err := encodeVariant(e, v); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalXML implements xml.Unmarshaler. It is called once per child
// element and appends.
func (s *Seq[V, K]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeVariant[V, K](d, start)
	if err != nil {
		return err
	}

	*s = append(*s, v)

	return nil
}

// MarshalYAML encodes s as a list of single-key mappings.
func (s Seq[V, K]) MarshalYAML() (any, error) {
	out := make([]yaml.MapSlice, 0, len(s))

	for _, v := range s {
		if isNil(v) {
			continue
		}

		out = append(out, yaml.MapSlice{{Key: v.Tag(), Value: v}})
	}

	return out, nil
}

// UnmarshalYAML implements the goccy/go-yaml node unmarshaler.
func (s *Seq[V, K]) UnmarshalYAML(node ast.Node) error {
	switch n := node.(type) {
	case *ast.NullNode:
		*s = nil

		return nil

	case *ast.SequenceNode:
		out := make(Seq[V, K], 0, len(n.Values))

		for _, item := range n.Values {
			mvs := mappingValues(item)
			if len(mvs) != 1 {
				return ErrChoiceCardinality.With(
					slog.Int("keys", len(mvs)),
					slog.String("path", item.GetPath()),
				)
			}

			v, err := decodeYAMLVariant[V, K](keyOf(mvs[0]), mvs[0].Value)
			if err != nil {
				return err
			}

			out = append(out, v)
		}

		*s = out

		return nil

	default:
		return ErrUnknownVariant.With(
			slog.String("node", node.Type().String()),
			slog.String("want", ast.SequenceType.String()),
		)
	}
}

func encodeVariant[V Variant](e *xml.Encoder, v V) error {
	return e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: v.Tag()}})
}

func decodeVariant[V Variant, K Kinds[V]](
	d *xml.Decoder,
	start xml.StartElement,
) (V, error) {
	var kinds K

	v, ok := kinds.New(start.Name.Local)
	if !ok {
		var zero V

		return zero, unknownVariant(start.Name.Local, kinds.Tags())
	}

	if err := d.DecodeElement(v, &start); err != nil {
		var zero V

		return zero, err
	}

	return v, nil
}

func decodeYAMLVariant[V Variant, K Kinds[V]](tag string, node ast.Node) (V, error) {
	var kinds K

	v, ok := kinds.New(tag)
	if !ok {
		var zero V

		return zero, unknownVariant(tag, kinds.Tags())
	}

	if _, null := node.(*ast.NullNode); !null {
		if err := yaml.NodeToValue(node, v); err != nil {
			var zero V

			return zero, err
		}
	}

	return v, nil
}

func unknownVariant(tag string, tags []string) error {
	return ErrUnknownVariant.With(
		slog.String("element", tag),
		slog.Any("suggestions", pkg.Suggest(tag, tags, pkg.MaxSuggestions)),
	)
}

// mappingValues returns the entries of a mapping node.
func mappingValues(node ast.Node) []*ast.MappingValueNode {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}
	case *ast.TagNode:
		return mappingValues(n.Value)
	default:
		return nil
	}
}

func keyOf(mv *ast.MappingValueNode) string {
	if s, ok := mv.Key.(*ast.StringNode); ok {
		return s.Value
	}

	if tok := mv.Key.GetToken(); tok != nil {
		return tok.Value
	}

	return mv.Key.String()
}
