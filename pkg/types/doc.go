// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the collab-matcher pipeline:
// faculty profiles, heterogeneous opportunity records, the team records
// written to the output file, and the run configuration.
package types
