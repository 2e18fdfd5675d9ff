// Package params parses a program's argument vector into typed values
// declared against a registry: POSIX-style short options, combinable
// short flags, GNU long options with = or separate values, and
// positional parameters matched in declaration order.
//
// Note the ambiguities in conventional argument syntax: "-fbar" can be
// either four short flags, or the short option -f with the value "bar";
// "-f bar" may be an option with a value, or a flag followed by a
// positional. What the arguments mean is application-specific, and the
// registry resolves both cases from the declarations alone: each
// character of a short cluster is looked up left to right, and the
// first match that takes a value claims the rest of the token (or the
// next one) as that value.
//
// For example:
//
//	var (
//		audible  bool
//		count    uint    = 10
//		interval float32 = 1.0
//		dest     string
//	)
//	p := params.New()
//	params.Bind(p, &audible, []string{"-a"})
//	params.Bind(p, &count, []string{"-c", "--count"})
//	params.Bind(p, &interval, []string{"-i", "--interval"})
//	params.Bind(p, &dest, nil, params.Required())
//	err := p.Parse(os.Args[1:])
//
// Storage may also be owned by the registry itself, declared with
// Declare and read back with Get after parsing.
package params
