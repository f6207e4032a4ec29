// Package fieldtoken parses the field-token mini-language used to choose what
// goes into a canonical message.
//
// # Syntax
//
// A field list is a comma-separated sequence of tokens. Tokens are taken
// verbatim: no whitespace is trimmed and empty tokens are kept. The empty
// string is the empty list.
//
//   - "$N" where N is one or more ASCII digits selects the Nth segment of the
//     request URL split on "/", counting from zero.
//   - Any other token is a name, looked up first in the store and then in the
//     request body.
//
// A token that starts with "$" is always a segment selector; if N is not a
// valid non-negative integer it fails to resolve rather than falling back to a
// name lookup.
package fieldtoken
