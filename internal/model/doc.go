package model

// Package model defines domain data structures used across the app: tracks,
// playlist entities, and status enums. Structures carry explicit state
// transitions driven by the processing pipeline.
