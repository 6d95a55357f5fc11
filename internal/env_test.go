package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identToken(lexeme string) *Token {
	return &Token{Kind: tkIdentifier, Lexeme: lexeme, Line: 1}
}

func TestEnvLookup(t *testing.T) {
	state, _ := newTestState()
	global := newEnv(state, nil)
	local := newEnv(state, global)

	global.define("a", loxNumber(1))
	local.define("b", loxString("x"))

	assert.Equal(t, loxNumber(1), local.get(identToken("a")))
	assert.Equal(t, loxString("x"), local.get(identToken("b")))

	local.assign(identToken("a"), loxNumber(2))
	assert.Equal(t, loxNumber(2), global.get(identToken("a")))

	// redefinition replaces the binding
	global.define("a", nil)
	assert.Nil(t, local.get(identToken("a")))
}

func TestEnvUndefined(t *testing.T) {
	state, _ := newTestState()
	e := newEnv(state, newEnv(state, nil))

	defer func() {
		runErr, ok := recover().(*RuntimeError)
		require.True(t, ok)
		assert.ErrorIs(t, runErr, errUndefinedVar)
		assert.Equal(t, "Undefined variable 'ghost'.", runErr.Error())
	}()
	e.get(identToken("ghost"))
}

func TestEnvDistances(t *testing.T) {
	state, _ := newTestState()
	outer := newEnv(state, nil)
	middle := newEnv(state, outer)
	inner := newEnv(state, middle)

	outer.define("a", loxNumber(1))
	middle.define("a", loxNumber(2))

	assert.Same(t, outer, inner.ancestor(2))
	assert.Equal(t, loxNumber(2), inner.getAt(1, "a"))
	assert.Equal(t, loxNumber(1), inner.getAt(2, "a"))

	inner.assignAt(2, identToken("a"), loxNumber(3))
	assert.Equal(t, loxNumber(3), outer.values["a"])
	assert.Equal(t, loxNumber(2), middle.values["a"])
}

func TestEnvDistanceMismatchPanics(t *testing.T) {
	state, _ := newTestState()
	e := newEnv(state, newEnv(state, nil))

	assert.Panics(t, func() { e.ancestor(5) })
	assert.Panics(t, func() { e.getAt(1, "missing") })
}
