package model

// Comment is an open, string-keyed field mapping for a stored comment.
// The API imposes no field-level schema: callers may submit any JSON object
// and get it back verbatim, plus the store-assigned "_id". Keeping the type
// a plain map lets it flow unchanged through the HTTP, service, and
// persistence layers.
type Comment map[string]interface{}

// Clone returns a shallow copy of the comment so layers can strip or add
// fields (e.g. "_id") without mutating the caller's map.
func (c Comment) Clone() Comment {
	out := make(Comment, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
