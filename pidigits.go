package chaoracle

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
)

// piMantissa holds the first 776 decimal digits of π.
const piMantissa = "1415926535897932384626433832795028841971693993751058209749445923078164" +
	"0628620899862803482534211706798214808651328230664709384460955058223172" +
	"5359408128481117450284102701938521105559644622948954930381964428810975" +
	"6659334461284756482337867831652712019091456485669234603486104543266482" +
	"1339360726024914127372458700660631558817488152092096282925409171536436" +
	"7892590360011330530548820466521384146951941511609433057270365759591953" +
	"0921861173819326117931051185480744623799627495673518857527248912279381" +
	"8301194912983367336244065664308602139494639522473719070217986094370277" +
	"0539217176293176752384674818467669405132000568127145263560827785771342" +
	"7577896091736371787214684409012249534301465495853710507922796892589235" +
	"4201995611212902196086403441815981362977477130996051870721134999999837" +
	"297805"

// PiRunCount selects a run count by sampling a random window of decimal
// digits of π. Windows starting with a 0 are rejected so the count always
// carries the requested number of significant digits. digits must be in
// 1..9 so the result fits an int on every platform.
func PiRunCount(digits int) (int, error) {
	if digits < 1 || digits > 9 {
		return 0, fmt.Errorf("digit count must be in 1..9, got %d", digits)
	}

	for {
		idx, err := secureIndex(len(piMantissa) - digits + 1)
		if err != nil {
			return 0, err
		}

		window := piMantissa[idx : idx+digits]
		if window[0] == '0' {
			continue
		}

		return strconv.Atoi(window)
	}
}

// secureIndex draws a random index in [0, n) from the OS secure source.
func secureIndex(n int) (int, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n)), nil
}
