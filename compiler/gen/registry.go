package gen

import (
	"cmp"
	"errors"
	"regexp"
	"slices"

	"github.com/syssam/conjen/schema"
)

var enumValuePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

// Registry is the immutable set of definitions of one generation run. It is
// built completely before any code is generated, after which it may be
// read from any number of goroutines.
type Registry struct {
	defs  map[schema.TypeName]schema.TypeDefinition
	order []schema.TypeName
	// cyclic holds every alias that reaches itself through alias
	// references, directly or inside a container.
	cyclic map[schema.TypeName]bool
}

// NewRegistry collects defs and validates names. Every violation is
// reported; the returned error joins one SchemaError per problem.
func NewRegistry(defs ...schema.TypeDefinition) (*Registry, error) {
	r := &Registry{defs: make(map[schema.TypeName]schema.TypeDefinition, len(defs))}
	var errs []error
	for _, d := range defs {
		if d == nil {
			continue
		}
		name := d.TypeName()
		if name.Name == "" {
			errs = append(errs, NewSchemaError("", "", "definition has no name", nil))
			continue
		}
		if _, ok := r.defs[name]; ok {
			errs = append(errs, NewSchemaError(name.String(), "", "duplicate type name", nil))
			continue
		}
		errs = append(errs, validateDefinition(d)...)
		r.defs[name] = d
		r.order = append(r.order, name)
	}
	slices.SortFunc(r.order, compareNames)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	r.cyclic = r.aliasCycles()
	return r, nil
}

// aliasCycles returns the aliases lying on a cycle of alias references.
// Objects and unions break a cycle since they are referenced by pointer.
func (r *Registry) aliasCycles() map[schema.TypeName]bool {
	edges := make(map[schema.TypeName][]schema.TypeName)
	for _, n := range r.order {
		alias, ok := r.defs[n].(*schema.AliasDefinition)
		if !ok {
			continue
		}
		for _, ref := range schema.References(alias.Alias) {
			if _, ok := r.defs[ref].(*schema.AliasDefinition); ok {
				edges[n] = append(edges[n], ref)
			}
		}
	}
	cyclic := make(map[schema.TypeName]bool)
	for start := range edges {
		seen := map[schema.TypeName]bool{}
		stack := slices.Clone(edges[start])
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n == start {
				cyclic[start] = true
				break
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			stack = append(stack, edges[n]...)
		}
	}
	return cyclic
}

func compareNames(a, b schema.TypeName) int {
	if c := cmp.Compare(a.Package, b.Package); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func validateDefinition(d schema.TypeDefinition) []error {
	var errs []error
	typ := d.TypeName().String()
	checkFields := func(fields []schema.FieldDefinition) {
		seen := make(map[string]bool, len(fields))
		goNames := make(map[string]string, len(fields))
		for _, f := range fields {
			switch {
			case f.Name == "":
				errs = append(errs, NewSchemaError(typ, "", "field has no name", nil))
				continue
			case f.Type == nil:
				errs = append(errs, NewSchemaError(typ, f.Name, "field has no type", nil))
			case seen[f.Name]:
				errs = append(errs, NewSchemaError(typ, f.Name, "duplicate field name", nil))
				continue
			}
			seen[f.Name] = true
			if prev, ok := goNames[GoName(f.Name)]; ok {
				errs = append(errs, NewSchemaError(typ, f.Name, "field name collides with "+prev+" in generated code", nil))
			}
			goNames[GoName(f.Name)] = f.Name
		}
	}
	switch d := d.(type) {
	case *schema.ObjectDefinition:
		checkFields(d.Fields)
	case *schema.UnionDefinition:
		checkFields(d.Members)
	case *schema.EnumDefinition:
		seen := make(map[string]bool, len(d.Values))
		for _, v := range d.Values {
			switch {
			case !enumValuePattern.MatchString(v.Value):
				errs = append(errs, NewSchemaError(typ, v.Value, "enum values must be UPPER_SNAKE_CASE", nil))
			case seen[v.Value]:
				errs = append(errs, NewSchemaError(typ, v.Value, "duplicate enum value", nil))
			}
			seen[v.Value] = true
		}
	case *schema.AliasDefinition:
		if d.Alias == nil {
			errs = append(errs, NewSchemaError(typ, "", "alias has no type", nil))
		}
	}
	return errs
}

// Lookup returns the definition with the given name.
func (r *Registry) Lookup(name schema.TypeName) (schema.TypeDefinition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Definitions returns every definition ordered by package and name.
func (r *Registry) Definitions() []schema.TypeDefinition {
	out := make([]schema.TypeDefinition, len(r.order))
	for i, n := range r.order {
		out[i] = r.defs[n]
	}
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.order)
}

// InAliasCycle reports whether name is an alias that refers back to itself,
// possibly through optional, list, set or map types.
func (r *Registry) InAliasCycle(name schema.TypeName) bool {
	return r.cyclic[name]
}

// Dealias follows alias references until it reaches a type that is not an
// alias. Unknown references are returned unchanged; an alias on a cycle is
// reported as a SchemaError.
func (r *Registry) Dealias(t schema.Type) (schema.Type, error) {
	for {
		ref, ok := t.(schema.Reference)
		if !ok {
			return t, nil
		}
		alias, ok := r.defs[ref.Name].(*schema.AliasDefinition)
		if !ok {
			return t, nil
		}
		if r.cyclic[ref.Name] {
			return nil, NewSchemaError(ref.Name.String(), "", "alias cycle", nil)
		}
		t = alias.Alias
	}
}

// Unresolved returns the first reference inside t that the registry cannot
// resolve.
func (r *Registry) Unresolved(t schema.Type) (schema.TypeName, bool) {
	for _, n := range schema.References(t) {
		if _, ok := r.defs[n]; !ok {
			return n, true
		}
	}
	return schema.TypeName{}, false
}
