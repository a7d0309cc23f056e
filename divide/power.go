package divide

import "github.com/katalvlaran/recurse/core"

// FastPower returns base^exp by squaring. Domain exp ≥ 0; FastPower(b, 0)
// == 1 for every b, 0 included. The result wraps on overflow.
func FastPower(base int64, exp int) (int64, error) {
	v, _, err := FastPowerStats(base, exp)

	return v, err
}

// FastPowerStats is FastPower with the number of calls, the recursion
// depth and the multiplications performed.
func FastPowerStats(base int64, exp int) (int64, core.Stats, error) {
	var st core.Stats
	if err := core.CheckNatural("divide: FastPower", exp); err != nil {
		return 0, st, err
	}

	v := fastPower(base, exp, 1, &st)

	return v, st, nil
}

func fastPower(base int64, exp, depth int, st *core.Stats) int64 {
	st.Enter(depth)
	if exp == 0 {
		return 1
	}

	half := fastPower(base, exp/2, depth+1, st)
	if exp%2 == 0 {
		st.Multiplications++

		return half * half
	}
	st.Multiplications += 2

	return base * half * half
}

// NaivePower returns base^exp by exp repeated multiplications; the
// reference against which FastPower is checked.
func NaivePower(base int64, exp int) (int64, error) {
	v, _, err := NaivePowerStats(base, exp)

	return v, err
}

// NaivePowerStats is NaivePower with its multiplication count (== exp).
func NaivePowerStats(base int64, exp int) (int64, core.Stats, error) {
	st := core.Stats{Calls: 1, MaxDepth: 1}
	if err := core.CheckNatural("divide: NaivePower", exp); err != nil {
		return 0, core.Stats{}, err
	}

	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
		st.Multiplications++
		st.Steps++
	}

	return result, st, nil
}
