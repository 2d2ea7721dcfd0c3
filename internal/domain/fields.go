package domain

// Fields is a partial-update payload keyed by domain field names (camelCase).
// A missing key means "leave the column alone"; a key holding nil writes an
// explicit SQL NULL. Repositories translate Fields to storage columns through
// the central row transform before building the UPDATE.
type Fields map[string]any
