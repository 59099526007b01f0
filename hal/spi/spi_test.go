package spi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubError struct{ kind ErrorKind }

func (e stubError) Error() string   { return "spi: " + e.kind.String() }
func (e stubError) Kind() ErrorKind { return e.kind }

func TestOf(t *testing.T) {
	require.Equal(t, ModeFault, Of(stubError{kind: ModeFault}))
	require.Equal(t, ChipSelectFault, Of(fmt.Errorf("xfer: %w", stubError{kind: ChipSelectFault})))
	require.Equal(t, FrameFormat, Of(fmt.Errorf("xfer: %w", FrameFormat)))
	require.Equal(t, Other, Of(errors.New("unrelated")))
	require.Equal(t, Other, Of(nil))
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "overrun", Overrun.String())
	require.Equal(t, "mode fault", ModeFault.Error())
	require.Equal(t, "unknown spi error", ErrorKind(0xFF).String())
}
