// Package openai implements the [ai.Provider] interface for OpenAI's Chat
// Completions API.
//
// Groq exposes an OpenAI-compatible API, so the same adapter serves both
// vendors: [New] targets OpenAI, [NewGroq] targets Groq. Only the base URL,
// credential, and reported name differ; every conversion rule is shared.
//
// Requests authenticate with a Bearer token read from OPENAI_API_KEY (or
// GROQ_API_KEY). JSON output mode uses the native response_format switch plus
// a system-level instruction, since both vendors require the prompt itself to
// mention JSON.
package openai
