package resolver

// DecodeAllDocs exposes decodeAllDocs.
var DecodeAllDocs = decodeAllDocs
