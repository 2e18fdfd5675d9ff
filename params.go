package params

import (
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

const (
	optPrefix  = "-"
	longPrefix = "--"
	terminator = "--"
)

// isOption reports whether a declared name or an argument token names
// an option rather than a positional.
func isOption(s string) bool {
	return strings.HasPrefix(s, optPrefix)
}

// param is one declared parameter. The registry owns these in
// declaration order; the name map and the positional list refer to
// them by index.
type param struct {
	names    []string
	option   bool
	required bool
	found    bool
	help     string
	metavar  string
	// Pointer to the bound storage. Its concrete type doubles as the
	// parameter's type tag.
	target any
}

func (s *param) set(text string) error {
	if err := convert(s.target, text); err != nil {
		return err
	}
	s.found = true
	return nil
}

func (s *param) displayName() string {
	if len(s.names) != 0 {
		return s.names[0]
	}
	return s.metavarName()
}

// metavarName is the value placeholder shown in usage output, derived
// from the last (conventionally longest) declared name.
func (s *param) metavarName() string {
	if s.metavar != "" {
		return s.metavar
	}
	if len(s.names) == 0 {
		return "ARG"
	}
	name := strings.TrimLeft(s.names[len(s.names)-1], optPrefix)
	return strings.ToUpper(xstrings.ToSnakeCase(name))
}

// Params is a registry of declared parameters and the engine state
// needed to match an argument vector against them.
type Params struct {
	specs      []param
	byName     map[string]int
	positional []int // indices into specs, declaration order
	strict     bool

	program       string
	description   string
	noDefaultHelp bool
}

// New returns an empty registry. Unknown tokens are errors unless the
// Lax option is given.
func New(opts ...ParseOpt) *Params {
	p := &Params{
		byName: make(map[string]int),
		strict: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Bind declares a parameter backed by caller-owned storage. The target
// is written in place when the parameter is matched and keeps its
// previous value if the parameter never appears. An empty names slice
// declares an anonymous positional.
func Bind[T Value](p *Params, target *T, names []string, opts ...BindOpt) error {
	return p.add(target, names, opts)
}

// Declare declares a parameter whose storage the registry owns. The
// parsed value is read back with Get.
func Declare[T Value](p *Params, names []string, opts ...BindOpt) error {
	return p.add(new(T), names, opts)
}

// Get returns the value bound to name. It fails if the name was never
// declared, or if T is not the type it was declared with.
func Get[T Value](p *Params, name string) (T, error) {
	var zero T
	i, ok := p.byName[name]
	if !ok {
		return zero, errors.Wrapf(ErrParamNotFound, "%q", name)
	}
	target, ok := p.specs[i].target.(*T)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "%q is bound to %T", name, p.specs[i].target)
	}
	return *target, nil
}

// add registers one parameter under all of its names. Every name must
// agree on option-vs-positional; short option names are a single
// character after the dash. Names are unique across the registry.
func (p *Params) add(target any, names []string, opts []BindOpt) error {
	s := param{names: names, target: target}
	for _, opt := range opts {
		opt(&s)
	}
	for i, name := range names {
		if name == "" {
			return errors.Wrap(ErrDeclaration, "empty name")
		}
		if name == terminator {
			return errors.Wrapf(ErrDeclaration, "%q is the option terminator", name)
		}
		isOpt := isOption(name)
		if i > 0 && isOpt != s.option {
			return errors.Wrapf(ErrDeclaration, "names %q mix option and positional forms", names)
		}
		s.option = isOpt
		if isOpt && !strings.HasPrefix(name, longPrefix) && len(name) != 2 {
			return errors.Wrapf(ErrDeclaration, "short option %q must be a single character", name)
		}
		if _, dup := p.byName[name]; dup {
			return errors.Wrapf(ErrDeclaration, "name %q declared more than once", name)
		}
	}
	idx := len(p.specs)
	p.specs = append(p.specs, s)
	for _, name := range names {
		p.byName[name] = idx
	}
	if !s.option {
		p.positional = append(p.positional, idx)
	}
	return nil
}
