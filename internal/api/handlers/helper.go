package handlers

import "context"

// ContextFunc returns the context that outlives a single request, normally
// the agent's root context.
type ContextFunc func() context.Context
