package fix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func framed(chunks ...string) []byte {
	return []byte(strings.Join(chunks, sohStr) + sohStr)
}

func TestChecksumKnownVector(t *testing.T) {
	input := framed(
		"8=FIX.4.4",
		"9=75",
		"35=A",
		"34=1092",
		"49=TESTBUY1",
		"52=20180920-18:24:59.643",
		"56=TESTSELL1",
		"98=0",
		"108=60",
	)

	assert.Equal(t, "178", Checksum(input))
}

func TestChecksumAlwaysThreeDigits(t *testing.T) {
	cases := map[string][]byte{
		"empty input":  nil,
		"single byte":  {0x07},
		"wraps at 256": {0xff, 0xff, 0xff, 0x10},
		"ascii text":   []byte("8=FIX.4.4"),
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			sum := Checksum(input)
			assert.Len(t, sum, 3)
			for i := 0; i < len(sum); i++ {
				assert.True(t, sum[i] >= '0' && sum[i] <= '9', "non-digit in %q", sum)
			}
		})
	}
}

func TestChecksumEmptyIsZero(t *testing.T) {
	assert.Equal(t, "000", Checksum(nil))
}

func TestChecksumWraparound(t *testing.T) {
	// 200 + 200 = 400, which wraps to 144 in a uint8.
	assert.Equal(t, "144", Checksum([]byte{200, 200}))
}
