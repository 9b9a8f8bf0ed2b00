// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package qjson is a hand-rolled JSON tokenizer, parser, and serializer
// that exchanges a dynamically-typed value tree instead of going through
// reflection. It exists to replace a host framework's built-in JSON
// facilities that impose an input-size ceiling, fragment the heap on
// large documents, or carry known correctness defects in certain
// releases, and it targets applications that parse and emit large JSON
// payloads -- multi-megabyte RPC responses, snapshots, config blobs --
// and need predictable behavior across platforms.
//
// Numbers
//
// JSON numbers are interpreted as one of three host kinds depending on
// their lexeme: a lexeme containing '.', 'e', or 'E' becomes a float64;
// otherwise a lexeme starting with '-' becomes an int64; otherwise a
// uint64. An integer lexeme too large for its 64-bit kind becomes a
// float64 approximation. This preserves 64-bit integer round-trips that a float64-only
// representation would lose above 2^53.
//
// Object key order
//
// Parsed objects preserve insertion order (and duplicate keys) for
// fidelity to the source document, but Serialize and ToUTF8 always emit
// object members in ascending lexicographic byte order of their UTF-8
// key, regardless of insertion order. This guarantees deterministic
// output regardless of how the Value tree was built.
//
// Testing
//
// qjson is tested against a small pass/fail corpus named in the style of
// Nicolas Seriot's JSONTestSuite (testdata/jsontestsuite: pass*.json must
// parse, fail*.json must not), round-trip fixtures (testdata/round), and a
// differential fuzz harness (internal/fuzz) that checks qjson's verdicts
// against encoding/json on arbitrary input.
package qjson
