package can

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubError struct{ kind ErrorKind }

func (e stubError) Error() string   { return "can: " + e.kind.String() }
func (e stubError) Kind() ErrorKind { return e.kind }

func TestOf(t *testing.T) {
	require.Equal(t, Acknowledge, Of(stubError{kind: Acknowledge}))
	require.Equal(t, Stuff, Of(fmt.Errorf("tx: %w", stubError{kind: Stuff})))
	require.Equal(t, Crc, Of(fmt.Errorf("rx: %w", Crc)))
	require.Equal(t, Other, Of(errors.New("unrelated")))
	require.Equal(t, Other, Of(nil))
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "crc mismatch", Crc.String())
	require.Equal(t, "bit error", Bit.Error())
	require.Equal(t, "unknown can error", ErrorKind(0xFF).String())
}
