package params

// ParseOpt configures a registry at construction.
type ParseOpt func(p *Params)

// Lax makes unknown options and excess positionals skipped instead of
// errors.
func Lax() ParseOpt {
	return func(p *Params) {
		p.strict = false
	}
}

// Sets the program name shown first in usage output. Defaults to the
// process name when parsing the real argument vector.
func Program(program string) ParseOpt {
	return func(p *Params) {
		p.program = program
	}
}

// Writes program description between usage and option help.
func Description(desc string) ParseOpt {
	return func(p *Params) {
		p.description = desc
	}
}

// NoDefaultHelp disables the implicit -h and --help flags.
func NoDefaultHelp() ParseOpt {
	return func(p *Params) {
		p.noDefaultHelp = true
	}
}

// BindOpt configures a single declaration.
type BindOpt func(s *param)

// Required makes Parse fail if the parameter never appears.
func Required() BindOpt {
	return func(s *param) {
		s.required = true
	}
}

// Help sets the line of text shown after the parameter in usage output.
func Help(text string) BindOpt {
	return func(s *param) {
		s.help = text
	}
}

// Metavar overrides the value placeholder derived from the parameter's
// name in usage output.
func Metavar(name string) BindOpt {
	return func(s *param) {
		s.metavar = name
	}
}
