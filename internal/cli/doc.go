package cli

// Package cli implements the command-line surface: flag parsing, the
// interactive URL prompt, the ffmpeg precondition check and the result
// summary table.
