// Package printer is the entry layer of the pipeline: it classifies the
// input into a representation, resolves the layered configuration,
// dispatches to the rendering engine, and finishes the token stream as
// plain or colorized text.
package printer

import (
	"github.com/resin-fmt/resin/pkg/colorize"
	"github.com/resin-fmt/resin/pkg/config"
	"github.com/resin-fmt/resin/pkg/errors"
	"github.com/resin-fmt/resin/pkg/render"
	"github.com/resin-fmt/resin/pkg/sexpr"
	"github.com/resin-fmt/resin/pkg/token"
	"github.com/resin-fmt/resin/pkg/zipper"
)

// engine is the rendering engine every dispatch goes through. Swapped
// out in tests.
var engine render.Engine = render.Basic{}

// Classify normalizes an input into the value the renderer will walk
// and the representation tag the capability set is bound from.
//
// The declared input-kind options are checked before anything else, so
// a mismatch never triggers a parse. Text inputs are parsed into a
// document, with tabs expanded first when tab expansion is on. A nil
// input, a typed-nil document, or text that parses to nothing,
// classifies as a nil document; the dispatcher short-circuits it
// without calling the engine.
func Classify(input interface{}, res *config.Resolved) (interface{}, config.Representation, error) {
	loc, isLoc := input.(*zipper.Loc)
	node, isNode := input.(*sexpr.Node)
	text, isText := input.(string)

	if res.Schema.Input.Zipper && !isLoc && !isNode {
		return nil, "", errors.New(errors.ErrInputKindMismatch,
			"input was declared a document but is not one")
	}
	if res.Schema.Input.ParseString && !isText {
		return nil, "", errors.New(errors.ErrInputKindMismatch,
			"input was declared text to parse but is not a string")
	}

	switch {
	case input == nil, isLoc && loc == nil, isNode && node == nil:
		return nil, config.RepDocument, nil
	case isText:
		if res.Schema.Tab.Expand {
			text = sexpr.ExpandTabs(text, res.Schema.Tab.Width)
		}
		parsed, err := sexpr.ParseOne(text)
		if err != nil {
			return nil, "", err
		}
		if parsed == nil {
			return nil, config.RepDocument, nil
		}
		return zipper.New(parsed), config.RepDocument, nil
	case isLoc:
		return loc, config.RepDocument, nil
	case isNode:
		return zipper.New(node), config.RepDocument, nil
	default:
		return input, config.RepValue, nil
	}
}

// dispatch binds the capability set for the classified representation
// and runs the engine. A nil input yields a single empty element token
// and the engine is never invoked.
func dispatch(input interface{}, rep config.Representation, res *config.Resolved) (token.Stream, error) {
	res.Bind(rep)
	if input == nil {
		return token.Stream{{Kind: token.Element}}, nil
	}
	return engine.Render(res, 0, input)
}

// Tokens runs the pipeline up to the raw token stream, returning it
// paired with the resolved options. Trailing arguments are interpreted
// as in Print. When a special diagnostic flag was given the stream and
// options are nil and the diagnostic comes back as the string.
func Tokens(input interface{}, args ...interface{}) (token.Stream, *config.Resolved, string, error) {
	return tokens(config.Global(), input, false, args)
}

func tokens(store *config.Store, input interface{}, forceParse bool, args []interface{}) (token.Stream, *config.Resolved, string, error) {
	call, width, widthGiven, flag, err := parseArgs(args)
	if err != nil {
		return nil, nil, "", err
	}
	if forceParse {
		call = config.CloneMap(call)
		config.MergeMaps(call, map[string]interface{}{
			"input": map[string]interface{}{"parse-string": true},
		})
	}

	res, diag, err := store.Resolve(call, width, widthGiven, flag)
	if err != nil {
		return nil, nil, "", err
	}
	if res == nil {
		return nil, nil, diag, nil
	}

	normalized, rep, err := Classify(input, res)
	if err != nil {
		return nil, nil, "", err
	}
	stream, err := dispatch(normalized, rep, res)
	if err != nil {
		return nil, nil, "", err
	}
	return stream, res, "", nil
}

// Print pretty-prints any input to a plain string. Trailing arguments
// may be, in any order: an int (the line width), a map (per-call
// options) and a string (a special diagnostic flag such as "explain");
// each at most once.
func Print(input interface{}, args ...interface{}) (string, error) {
	return printWith(config.Global(), input, false, false, args)
}

// PrintColor is Print with the colorized finish forced on.
func PrintColor(input interface{}, args ...interface{}) (string, error) {
	return printWith(config.Global(), input, false, true, args)
}

// PrintString pretty-prints source text, with the parse-from-text
// input-kind requirement forced on: a non-string input is an error, not
// a value to walk.
func PrintString(text string, args ...interface{}) (string, error) {
	return printWith(config.Global(), text, true, false, args)
}

func printWith(store *config.Store, input interface{}, forceParse, color bool, args []interface{}) (string, error) {
	stream, res, diag, err := tokens(store, input, forceParse, args)
	if err != nil {
		return "", err
	}
	if res == nil {
		return diag, nil
	}
	if color {
		res.Schema.Color = true
	}
	return colorize.Finish(stream, res), nil
}

// SetOptions validates and commits options into the process-wide store.
func SetOptions(opts map[string]interface{}) error {
	return config.Global().SetOptions(opts)
}

// parseArgs interprets the variadic print arguments. An int supplies
// the width, a map supplies per-call options, a string supplies a
// special diagnostic flag.
func parseArgs(args []interface{}) (call map[string]interface{}, width int, widthGiven bool, flag string, err error) {
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			if widthGiven {
				return nil, 0, false, "", errors.New(errors.ErrInvalidInput,
					"width given more than once")
			}
			width, widthGiven = v, true
		case map[string]interface{}:
			if call != nil {
				return nil, 0, false, "", errors.New(errors.ErrInvalidInput,
					"options map given more than once")
			}
			call = v
		case string:
			if flag != "" {
				return nil, 0, false, "", errors.New(errors.ErrInvalidInput,
					"special flag given more than once")
			}
			flag = v
		default:
			return nil, 0, false, "", errors.Newf(errors.ErrInvalidInput,
				"unsupported print argument of type %T", arg)
		}
	}
	return call, width, widthGiven, flag, nil
}
