package params

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/pkg/errors"
)

// Parse scans args left to right against the declared parameters,
// writing matched values into their bound storage as it goes. On
// failure, storage written before the offending token keeps its new
// value; there is no rollback. Parsing is one-shot: found state is not
// reset, so a registry must not be parsed twice.
func (p *Params) Parse(args []string) error {
	nextPos := 0
	positionalOnward := false
	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case positionalOnward || arg == "" || arg == optPrefix || !isOption(arg):
			// A positional consumes exactly its own token; its value
			// is the token text.
			if nextPos < len(p.positional) {
				s := &p.specs[p.positional[nextPos]]
				if err := s.set(arg); err != nil {
					return err
				}
				nextPos++
			} else if p.strict {
				return errors.Wrapf(ErrUnknownPositional, "excess argument: %q", arg)
			}
			i++
		case arg == terminator:
			// The argument '--' terminates all options; any following
			// arguments are treated as non-option arguments, even if
			// they begin with a hyphen.
			positionalOnward = true
			i++
		case !strings.HasPrefix(arg, longPrefix):
			n, err := p.parseShort(args, i)
			if err != nil {
				return err
			}
			i += n
		default:
			n, err := p.parseLong(args, i)
			if err != nil {
				return err
			}
			i += n
		}
	}
	return p.checkRequired()
}

// ParseArgv parses the process argument vector.
func (p *Params) ParseArgv() error {
	if p.program == "" {
		p.program = filepath.Base(os.Args[0])
	}
	return p.Parse(os.Args[1:])
}

// parseShort walks a short option cluster such as -asdf. Each
// character is looked up as its own single-character option name. The
// first match that takes a value claims the rest of the token (or the
// next one) as that value and ends the walk; flags that take no value
// let the walk continue. Returns how many tokens were consumed.
func (p *Params) parseShort(args []string, at int) (int, error) {
	tok := args[at]
	for i := 1; i < len(tok); i++ {
		name := optPrefix + string(tok[i])
		idx, ok := p.byName[name]
		if !ok {
			if !p.strict {
				continue
			}
			if tok[i] == 'h' && !p.noDefaultHelp {
				return 0, ErrDefaultHelp
			}
			return 0, errors.Wrapf(ErrUnknownOption, "%q in %q", name, tok)
		}
		s := &p.specs[idx]
		if isBoolTarget(s.target) {
			if err := s.set(""); err != nil {
				return 0, err
			}
			continue
		}
		// Value-taking: the remainder of the token is the value (an
		// optional = delimiter is skipped), else the next token is.
		value := tok[i+1:]
		attached := value != ""
		if strings.HasPrefix(value, "=") {
			value = value[1:]
			attached = true
		}
		if attached {
			return 1, s.set(value)
		}
		if needsExplicitValue(s.target) {
			return 0, errors.Wrapf(ErrMissingValue, "explicit value required (%s=VALUE)", name)
		}
		if at+1 >= len(args) {
			return 0, errors.Wrapf(ErrMissingValue, "option %q", name)
		}
		return 2, s.set(args[at+1])
	}
	return 1, nil
}

// parseLong handles the --name, --name=value and --name value forms.
// Returns how many tokens were consumed.
func (p *Params) parseLong(args []string, at int) (int, error) {
	tok := args[at]
	name, value, hasValue := tok, "", false
	if j := strings.IndexByte(tok, '='); j != -1 {
		name, value, hasValue = tok[:j], tok[j+1:], true
	}
	idx, ok := p.byName[name]
	if !ok {
		if !p.strict {
			return 1, nil
		}
		if name == "--help" && !p.noDefaultHelp {
			return 0, ErrDefaultHelp
		}
		return 0, errors.Wrapf(ErrUnknownOption, "%q", name)
	}
	s := &p.specs[idx]
	if isBoolTarget(s.target) {
		// Presence alone sets the flag; --name=false clears it. A
		// boolean never consumes a following token.
		return 1, s.set(value)
	}
	if hasValue {
		return 1, s.set(value)
	}
	if needsExplicitValue(s.target) {
		return 0, errors.Wrapf(ErrMissingValue, "explicit value required (%s=VALUE)", name)
	}
	if at+1 >= len(args) {
		return 0, errors.Wrapf(ErrMissingValue, "option %q", name)
	}
	return 2, s.set(args[at+1])
}

// checkRequired runs after the stream is exhausted and reports the
// first required parameter that was never matched, in declaration
// order.
func (p *Params) checkRequired() error {
	for i := range iter.N(len(p.specs)) {
		s := &p.specs[i]
		if s.required && !s.found {
			return errors.Wrapf(ErrRequired, "missing argument: %q", s.displayName())
		}
	}
	return nil
}
