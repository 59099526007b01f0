package i2c

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubError struct{ kind ErrorKind }

func (e stubError) Error() string   { return "i2c: " + e.kind.String() }
func (e stubError) Kind() ErrorKind { return e.kind }

func TestOf(t *testing.T) {
	require.Equal(t, NoAcknowledge, Of(stubError{kind: NoAcknowledge}))
	require.Equal(t, ArbitrationLoss, Of(fmt.Errorf("tx: %w", stubError{kind: ArbitrationLoss})))
	require.Equal(t, Overrun, Of(fmt.Errorf("tx: %w", Overrun)))
	require.Equal(t, Other, Of(errors.New("unrelated")))
	require.Equal(t, Other, Of(nil))
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "bus error", Bus.String())
	require.Equal(t, "arbitration lost", ArbitrationLoss.Error())
	require.Equal(t, "unknown i2c error", ErrorKind(0xFF).String())
}
