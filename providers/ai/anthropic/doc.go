// Package anthropic implements the [ai.Provider] interface for Anthropic's
// Messages API.
//
// The Messages API differs from OpenAI-style endpoints in three ways this
// adapter absorbs: system text travels in a top-level system field instead of
// a system-role message, max_tokens is mandatory on every request, and
// authentication uses the x-api-key header (plus a fixed anthropic-version)
// rather than a Bearer token. JSON output mode has no native switch and is
// requested through a system-level instruction.
//
// Construct with [New] (reads ANTHROPIC_API_KEY) or [NewWithKey].
package anthropic
