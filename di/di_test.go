package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	testName  string
	testGreet struct{ text string }
)

func TestContainer(t *testing.T) {
	c := New()
	MustProvide(c,
		func() testName { return "world" },
		func(n testName) *testGreet { return &testGreet{text: "hello " + string(n)} },
	)

	var greet *testGreet
	require.NoError(t, Invoke(c, func(g *testGreet) { greet = g }))
	assert.Equal(t, "hello world", greet.text)

	assert.Error(t, Invoke(c, func(int) {}))
	assert.Panics(t, func() { MustProvide(c, 42) })
}
