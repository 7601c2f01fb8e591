// Package client provides the high-level entry point for talking to any
// supported LLM vendor through one API.
//
// A [Client] pairs a vendor adapter with an optional default model and an
// optional observability provider. Construct one from an explicit vendor
// identity ([New], [NewWithKey]), from an already-built adapter
// ([NewFromProvider]), or from a free-form model string ([FromModel],
// [FromModelWithKey]) which resolves the vendor via [ai.ResolveModel] and
// binds the resolved model as the default.
//
// [StructuredClient] decorates a client with typed JSON decoding: requests
// are forced into JSON output mode and responses are parsed into a
// caller-chosen struct, with automatic repair of near-valid JSON.
package client
