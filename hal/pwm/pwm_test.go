package pwm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	duty uint16
	err  error
}

func (o *fakeOutput) MaxDutyCycle() uint16        { return 1000 }
func (o *fakeOutput) SetDutyCycle(d uint16) error { o.duty = d; return o.err }

func TestSetDutyFraction(t *testing.T) {
	out := &fakeOutput{}

	require.NoError(t, SetDutyFraction(out, 1, 4))
	require.Equal(t, uint16(250), out.duty)

	// Above full scale clamps to max.
	require.NoError(t, SetDutyFraction(out, 3, 2))
	require.Equal(t, uint16(1000), out.duty)

	// Zero denom clamps to full scale.
	require.NoError(t, SetDutyFraction(out, 1, 0))
	require.Equal(t, uint16(1000), out.duty)

	require.NoError(t, SetDutyFraction(out, 0, 1))
	require.Equal(t, uint16(0), out.duty)

	// Large numerators must not overflow the intermediate product.
	require.NoError(t, SetDutyFraction(out, 1<<23, 1<<24))
	require.Equal(t, uint16(500), out.duty)
}
