/*
Package settings implements the functional core of bindsync: parsing a
Krunker settings export, extracting its "controls" (keybinds) section, and
merging that section into another export without disturbing any other field.

# Overview

The package exposes four operations and nothing else:

	Load(text)                  -> Value   parse and validate JSON text
	ExtractControls(doc)        -> Value   {"controls": doc.controls}
	MergeControls(src, tgt)     -> Value   tgt with controls replaced by src.controls
	Stringify(value, pretty)    -> string  render back to text

Every operation is a pure function over in-memory values. No I/O happens
here; files, clipboard and editors belong to the front ends.

# Values

A Value wraps the raw bytes of one well-formed JSON document. Working on
raw bytes (rather than decoding into map[string]any) buys three guarantees
the front ends rely on:

  - object field order survives a Load/Stringify round trip
  - numbers keep their exact source form (1e3 stays 1e3)
  - the controls section moves between documents byte-for-byte

Kind() reports which of the six JSON kinds a Value holds; the extractor and
merger switch on it rather than guessing at structure.

# Errors

Failures are sentinel errors checked with errors.Is: ErrEmptyInput,
ErrInvalidJSON (with line/column detail via *ParseError), ErrNotAnObject
and ErrMissingControls. Operations never partially apply: on error the
inputs are untouched and no result is produced.

# Strict parsing

Load is strict. Smart quotes, comments and trailing commas are rejected
like any other syntax error. LoadLenient strips comments and trailing
commas first and exists only for callers that ask for it explicitly.
*/
package settings
