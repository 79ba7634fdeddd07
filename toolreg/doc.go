// Package toolreg implements a pile-backed registry of callable tools.
// Tools are identity-keyed elements with a unique name, a human-readable
// description and a JSON-Schema-like parameter map; the registry resolves
// them by name and invokes their handler. Schema validation and agent
// dispatch loops belong to callers.
package toolreg
