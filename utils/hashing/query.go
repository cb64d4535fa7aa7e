package hashing

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// StringByBytes looks up string elements hashed with String using a []byte
// query, without converting the query to a string first.
type StringByBytes struct{}

func (StringByBytes) HashQuery(q []byte) uint64 {
	return xxhash.Sum64(q)
}

func (StringByBytes) MatchQuery(v string, q []byte) bool {
	return v == string(q)
}

// BytesByString looks up []byte elements hashed with Bytes using a string
// query.
type BytesByString struct{}

func (BytesByString) HashQuery(q string) uint64 {
	return xxhash.Sum64String(q)
}

func (BytesByString) MatchQuery(v []byte, q string) bool {
	return bytes.Equal(v, []byte(q))
}
