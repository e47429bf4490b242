// Package rpcd serves calculator sessions over JSON-RPC 2.0.
//
// Every connection gets its own [calc.Evaluator]. Requests on a connection
// are applied in order; see [MethodPush] and friends for the methods.
package rpcd
