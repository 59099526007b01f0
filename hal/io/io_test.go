package io

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubError struct{ kind ErrorKind }

func (e stubError) Error() string   { return "io: " + e.kind.String() }
func (e stubError) Kind() ErrorKind { return e.kind }

func TestOf(t *testing.T) {
	require.Equal(t, TimedOut, Of(stubError{kind: TimedOut}))
	require.Equal(t, BrokenPipe, Of(fmt.Errorf("write: %w", stubError{kind: BrokenPipe})))
	require.Equal(t, NotFound, Of(fmt.Errorf("open: %w", NotFound)))
	require.Equal(t, Other, Of(errors.New("unrelated")))
	require.Equal(t, Other, Of(nil))
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "entity not found", NotFound.String())
	require.Equal(t, "zero-length write", WriteZero.Error())
	require.Equal(t, "other i/o error", Other.String())
	require.Equal(t, "unknown i/o error", ErrorKind(0xFF).String())
}
