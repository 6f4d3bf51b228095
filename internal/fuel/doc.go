// Package fuel implements the accumulation core: a per-value transform,
// an accumulator that sums transformed values, and a scanner that feeds the
// accumulator from a stream of whitespace-separated integers.
//
// # Transform
//
// Each integer n contributes n/3 - 2, computed with Go's native integer
// division. Division truncates toward zero, so negative inputs round up:
//
//	Requirement(9)  ==  1
//	Requirement(1)  == -2
//	Requirement(-4) == -3
//
// # Termination
//
// Sum reads one token at a time and never holds more than one token in
// memory. The loop ends at the first of:
//   - end of input (StopEOF)
//   - a token that is not a base-10 int64, such as "hello" or "123abc"
//     (StopInvalidToken)
//   - a failing reader or an oversized token (StopReadError)
//
// None of these is an error. The total accumulated up to that point is the
// result.
package fuel
