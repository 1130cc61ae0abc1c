package ir

import (
	"fmt"

	"github.com/sbeio/gosbe/errs"
)

// endSignalFor maps a Begin* signal to its required matching End* signal.
// ValidValue and Choice are leaves within an enum/set, not themselves
// Begin/End paired.
var endSignalFor = map[Signal]Signal{
	SignalBeginMessage:   SignalEndMessage,
	SignalBeginComposite: SignalEndComposite,
	SignalBeginField:     SignalEndField,
	SignalBeginGroup:     SignalEndGroup,
	SignalBeginEnum:      SignalEndEnum,
	SignalBeginSet:       SignalEndSet,
	SignalBeginVarData:   SignalEndVarData,
}

var beginSignalFor = func() map[Signal]Signal {
	m := make(map[Signal]Signal, len(endSignalFor))
	for begin, end := range endSignalFor {
		m[end] = begin
	}

	return m
}()

type openFrame struct {
	signal Signal
	index  int
}

// Validate checks token-list well-formedness (Invariant 8): every Begin*
// has exactly one matching End* at the same nesting depth, and every
// Begin*'s ComponentTokenCount equals the index distance to its matching
// End* plus one.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("ir: empty token list: %w", errs.ErrMalformedIR)
	}

	var stack []openFrame

	for i, tok := range tokens {
		switch {
		case isBegin(tok.Signal):
			stack = append(stack, openFrame{signal: tok.Signal, index: i})
		case isEnd(tok.Signal):
			wantBegin := beginSignalFor[tok.Signal]
			if len(stack) == 0 {
				return fmt.Errorf("ir: token %d: %s with no matching %s: %w", i, tok.Signal, wantBegin, errs.ErrMalformedIR)
			}

			top := stack[len(stack)-1]
			if top.signal != wantBegin {
				return fmt.Errorf("ir: token %d: %s closes %s, expected to close %s: %w", i, tok.Signal, wantBegin, top.signal, errs.ErrMalformedIR)
			}

			stack = stack[:len(stack)-1]

			beginTok := tokens[top.index]
			want := i - top.index + 1
			if beginTok.ComponentTokenCount != want {
				return fmt.Errorf("ir: token %d (%s): componentTokenCount %d, want %d: %w",
					top.index, beginTok.Signal, beginTok.ComponentTokenCount, want, errs.ErrMalformedIR)
			}
		}
	}

	if len(stack) != 0 {
		unclosed := stack[len(stack)-1]
		return fmt.Errorf("ir: token %d: unclosed %s: %w", unclosed.index, unclosed.signal, errs.ErrMalformedIR)
	}

	if tokens[0].Signal != SignalBeginMessage && tokens[0].Signal != SignalBeginComposite {
		return fmt.Errorf("ir: token list does not start with BeginMessage/BeginComposite: %w", errs.ErrMalformedIR)
	}

	return nil
}

func isBegin(s Signal) bool {
	_, ok := endSignalFor[s]
	return ok
}

func isEnd(s Signal) bool {
	_, ok := beginSignalFor[s]
	return ok
}
