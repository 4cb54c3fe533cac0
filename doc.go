// Package uca implements the Unicode Collation Algorithm (UCA) with the
// CLDR root tailorings, exposing a deterministic three-valued comparison
// of two UTF-8 byte strings suitable for use as a database collation
// function.
//
// # Overview
//
// Comparison runs a four-stage pipeline of pull-based iterators:
//
//	bytes -> CodePointIter -> NfdIter -> ElementIter -> weight comparator
//
//  1. CodePointIter decodes UTF-8, substituting U+FFFD for ill-formed input.
//  2. NfdIter normalizes the decoded stream to Canonical Decomposition Form
//     (NFD), including canonical reordering of combining marks and Hangul
//     syllable decomposition.
//  3. ElementIter maps the normalized stream to four-level weighted
//     collation elements, resolving contractions (contiguous and
//     discontiguous), implicit weights for unassigned/CJK/Tangut/Nushu/
//     Khitan code points, and the Shifting strategy for variable weights.
//  4. Compare consumes two ElementIter streams in lockstep across all four
//     levels with short-circuit termination; CompareTiebreak additionally
//     breaks ties between canonically-inequivalent-but-collation-equal
//     strings by comparing their raw NFD code point sequences.
//
// # When to Use
//
// Use this package wherever two UTF-8 strings need a total, linguistically
// reasonable order without pulling in locale data beyond the CLDR root:
// sort keys, database collations, deduplication of canonically equivalent
// strings.
//
// # When NOT to Use
//
// This package implements only the CLDR root tailoring. It does not support
// per-locale tailoring, configurable strength (all four levels are always
// compared), case-level control, French secondary backwards, or numeric
// collation. It does not accept non-contiguous input (io.Reader-style
// streaming): callers must hold the full byte span in memory.
//
// # Basic Usage
//
//	r := uca.CompareTiebreak([]byte("café"), []byte("café"))
//	// r == 0: both strings are canonically equivalent.
//
//	sort.Slice(words, func(i, j int) bool {
//	    return uca.CompareTiebreak(words[i], words[j]) < 0
//	})
//
// # Performance Characteristics
//
// Comparison is single-threaded, synchronous, and allocation-frugal: all
// intermediate state (NFD lookahead buffers, pending collation elements,
// per-level weight queues) lives in small stack-inline ring buffers that
// only grow onto the heap for pathological inputs (long runs of combining
// marks, deep contractions). Compare terminates as soon as the primary
// level differs, without decoding the remainder of either string.
//
// # Error Handling
//
// The comparison functions cannot fail: invalid UTF-8 maps deterministically
// to U+FFFD, unassigned code points receive implicit weights, and empty
// strings compare equal. There is no logging, no telemetry, and no
// configuration surface — see SPEC_FULL.md and DESIGN.md for the rationale.
package uca
