// Package ai defines the shared, provider-agnostic types and interfaces used
// across all LLM provider implementations (OpenAI, Anthropic, Gemini, Groq).
// Each provider's conversion layer is responsible for mapping these types to
// its own wire format, keeping the rest of the codebase decoupled from
// provider-specific details.
//
// The central interface is [Provider] for synchronous chat completions.
// Request data flows through [ChatRequest] and responses are returned as
// [ChatResponse]. [ResolveModel] maps "vendor/model" strings (or bare model
// names such as "gpt-4o-mini") to the owning [ProviderID], and the sentinel
// errors in this package form the library's error taxonomy.
package ai
