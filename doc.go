// Package containers is a small set of in-memory sequence containers that can
// be reversed in O(1).
//
//   - array: a growable array with amortized O(1) insertion at both ends
//   - bitvector: a bit vector packed 64 bits to a word on top of array
//   - list: a doubly linked list whose nodes live in an index arena
//
// None of the containers are safe for concurrent use.
package containers
