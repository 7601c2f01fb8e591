// Package gemini implements the [ai.Provider] interface for Google's Gemini
// API (generateContent endpoint).
//
// Gemini's wire format is camelCase and departs from the other vendors in a
// few ways this adapter absorbs: the model name is part of the URL path, the
// conversation uses roles "user" and "model" (assistant maps to "model"),
// system text travels in a dedicated systemInstruction field, and JSON output
// is a native generationConfig switch (responseMimeType) with no prompt
// mutation. Authentication uses the x-goog-api-key header.
//
// Construct with [New] (reads GEMINI_API_KEY) or [NewWithKey].
package gemini
