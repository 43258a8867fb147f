package translate

import (
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

// SplitCompound splits line on top-level &&, ||, | and ; operators. Operators
// inside single or double quotes are part of the segment text. Empty segments
// are kept so callers can report them, except the one a trailing ; leaves.
func SplitCompound(line string) []domain.Segment {
	var (
		segments []domain.Segment
		start    int
		state    = stateOutside
	)

	emit := func(end int, op domain.Operator) {
		segments = append(segments, domain.Segment{Text: strings.TrimSpace(line[start:end]), Operator: op})
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch state {
		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			}
			continue
		case stateDoubleQuote:
			if ch == '"' {
				state = stateOutside
			}
			continue
		}

		switch ch {
		case '\'':
			state = stateSingleQuote
		case '"':
			state = stateDoubleQuote
		case '&':
			if i+1 < len(line) && line[i+1] == '&' {
				emit(i, domain.OperatorAnd)
				i++
				start = i + 1
			}
		case '|':
			if i+1 < len(line) && line[i+1] == '|' {
				emit(i, domain.OperatorOr)
				i++
			} else {
				emit(i, domain.OperatorPipe)
			}
			start = i + 1
		case ';':
			emit(i, domain.OperatorSeq)
			start = i + 1
		}
	}
	emit(len(line), domain.OperatorNone)

	if n := len(segments); n > 1 && segments[n-1].Text == "" && segments[n-2].Operator == domain.OperatorSeq {
		segments = segments[:n-1]
		segments[n-2].Operator = domain.OperatorNone
	}
	return segments
}

// JoinSegments reassembles segments with exactly one space around each
// operator.
func JoinSegments(segments []domain.Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg.Text)
		if seg.Operator != domain.OperatorNone && i < len(segments)-1 {
			b.WriteString(" " + string(seg.Operator) + " ")
		}
	}
	return b.String()
}

// IsCompound reports whether line holds more than one segment.
func IsCompound(line string) bool {
	return len(SplitCompound(line)) > 1
}
