package wordnet

import "errors"

// ErrInvalidPOS reports an unrecognized part-of-speech tag. It is a caller
// bug, surfaced synchronously by every store, traversal and similarity
// operation; it is never coerced or logged away.
var ErrInvalidPOS = errors.New("invalid part-of-speech")

// ErrNotFound reports a getter-style lookup that matched nothing. The
// traversal operations never return it; a missing id or literal there just
// produces an empty result.
var ErrNotFound = errors.New("synset not found")
