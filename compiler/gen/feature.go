package gen

var (
	// FeatureMsgpack adds msgpack encoders and decoders next to the JSON
	// codec of every generated object and enum.
	FeatureMsgpack = Feature{
		Name:        "msgpack",
		Stage:       Beta,
		Default:     false,
		Description: "Generates EncodeMsgpack/DecodeMsgpack methods that follow the JSON wire contract",
	}

	// FeatureGenericVisitor adds a generic, value-returning visitor to every
	// generated enum in addition to the error-returning one.
	FeatureGenericVisitor = Feature{
		Name:        "enum/genericvisitor",
		Stage:       Stable,
		Default:     true,
		Description: "Generates <Enum>VisitorWithT[T] and Accept<Enum>WithT for value-returning dispatch",
	}

	// FeatureStringer adds a String method to generated objects that lists
	// fields in declaration order.
	FeatureStringer = Feature{
		Name:        "object/stringer",
		Stage:       Stable,
		Default:     true,
		Description: "Generates a String method on value types",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureMsgpack,
		FeatureGenericVisitor,
		FeatureStringer,
	}
	// allFeatures includes all public and private features.
	allFeatures = AllFeatures
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete but their generated API may change.
	Alpha

	// Beta features have a settled API and are documented.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range allFeatures {
		if f.Name == name {
			return f, nil
		}
	}
	return Feature{}, NewConfigError("Features", name, "unexpected feature name")
}
