package sstmerge

import "github.com/mikhailwahib/sstable/internal/cbor"

// NaturalCompare merges inputs whose indexes were sorted with
// cbor.SortNatural.
func NaturalCompare(a, b cbor.Scalar) int { return cbor.NaturalCompare(a, b) }

// CanonicalCompare merges inputs whose indexes were sorted with
// cbor.SortCanonical.
func CanonicalCompare(a, b cbor.Scalar) int { return cbor.Compare(cbor.Encode(a), cbor.Encode(b)) }
