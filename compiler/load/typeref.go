package load

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/syssam/conjen/schema"
)

// Resolver maps a bare or dotted type name that is neither a primitive nor
// a container to a schema type.
type Resolver func(name string) schema.Type

// ParseTypeRef parses a type reference such as "map<string, list<Widget>>".
// Container and primitive names are case-insensitive; any other name is
// handed to resolve.
func ParseTypeRef(s string, resolve Resolver) (schema.Type, error) {
	p := &typeRefParser{input: s, resolve: resolve}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, p.errorf("unexpected %q", p.input[p.pos:])
	}
	return t, nil
}

type typeRefParser struct {
	input   string
	pos     int
	resolve Resolver
}

func (p *typeRefParser) parse() (schema.Type, error) {
	p.skipSpace()
	ident := p.ident()
	if ident == "" {
		return nil, p.errorf("expected a type name")
	}
	p.skipSpace()
	if p.peek() != '<' {
		if kind, ok := schema.ParsePrimitiveKind(ident); ok {
			return schema.Primitive{Kind: kind}, nil
		}
		if p.resolve == nil {
			return nil, p.errorf("unknown type %s", ident)
		}
		return p.resolve(ident), nil
	}
	p.pos++
	switch container := strings.ToLower(ident); container {
	case "optional", "list", "set":
		item, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		switch container {
		case "optional":
			return schema.Optional{Item: item}, nil
		case "list":
			return schema.List{Item: item}, nil
		default:
			return schema.Set{Item: item}, nil
		}
	case "map":
		key, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return schema.Map{Key: key, Value: value}, nil
	default:
		return nil, p.errorf("unknown container type %s", ident)
	}
}

func (p *typeRefParser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		r := rune(p.input[p.pos])
		if r != '.' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *typeRefParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *typeRefParser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *typeRefParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeRefParser) errorf(format string, args ...any) error {
	return errors.Wrapf(errors.Newf(format, args...), "type %q at offset %d", p.input, p.pos)
}

// splitQualified splits "com.acme.Widget" into its package and name.
func splitQualified(s string) schema.TypeName {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return schema.TypeName{Package: s[:i], Name: s[i+1:]}
	}
	return schema.TypeName{Name: s}
}
