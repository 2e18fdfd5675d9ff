package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args []string
	err  error // sentinel the parse error must wrap, nil for success
}

func noErrorCase(args ...string) parseCase {
	return parseCase{args: args}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

// runCases parses each case against a fresh registry, since parsing is
// one-shot.
func runCases(t *testing.T, build func() *Params, cases []parseCase) {
	for _, _case := range cases {
		err := build().Parse(_case.args)
		if _case.err == nil {
			assert.NoError(t, err, "%q", _case.args)
		} else {
			assert.ErrorIs(t, err, _case.err, "%q", _case.args)
		}
	}
}
