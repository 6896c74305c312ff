// Package gen turns a schema into generated Go source.
//
// # Architecture
//
// Generation is a two-phase protocol:
//
//	[]schema.TypeDefinition
//	        ↓
//	   NewRegistry (collect every definition, reject duplicates)
//	        ↓
//	   Generator (one task per definition, run in parallel)
//	        ↓
//	   Target (object, enum and alias emitters, see gen/golang)
//	        ↓
//	   Writer (goimports, write to disk)
//
// The Registry is immutable once built, so generation tasks share it
// without locking. Each task resolves field types through the Mapper,
// which decides the Go representation and the defensive-copy, default and
// null policies a builder applies to a field.
//
// # Interface Hierarchy
//
// Targets follow the Interface Segregation Principle:
//
//	MinimalTarget
//	├── Name() string
//	├── ObjectGenerator (GenObject: value type, builder, codecs)
//	└── EnumGenerator   (GenEnum: forward-compatible wrapper)
//
//	AliasGenerator (optional, detected at runtime)
//
// # Errors
//
// A definition that references an unknown type fails on its own with an
// UnresolvedTypeReferenceError; the remaining definitions are still
// generated and every failure is returned, joined, at the end of the run.
// Write failures abort the run.
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./internal/api"),
//	    gen.WithPackage("github.com/acme/app/internal/api"),
//	    gen.WithStrictObjects(true),
//	    gen.WithFeatures(gen.FeatureMsgpack),
//	)
package gen
