package fuel

import (
	"bufio"
	"context"
	"io"

	"github.com/vk/fuelsum/internal/ctxlog"
)

// MaxTokenSize bounds a single token. Longer tokens end the scan as a
// read error.
const MaxTokenSize = 1 << 20

// Sum scans r token by token, adding every parsed integer to a fresh
// Accumulator until the input ends or a token fails to parse. The context
// only supplies the logger.
func Sum(ctx context.Context, r io.Reader) Result {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	var acc Accumulator
	for scanner.Scan() {
		tok := scanner.Text()
		n, ok := ParseToken(tok)
		if !ok {
			logger.Debug("Stopping at unparsable token.", "token", tok, "count", acc.Count)
			return acc.result(Stop{Reason: StopInvalidToken, Token: tok})
		}
		acc.Add(n)
	}

	if err := scanner.Err(); err != nil {
		logger.Debug("Stopping on read error.", "error", err, "count", acc.Count)
		return acc.result(Stop{Reason: StopReadError, Err: err})
	}

	return acc.result(Stop{Reason: StopEOF})
}
