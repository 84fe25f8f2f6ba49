package paramstring

// TrimEscapesForTest exposes trimEscapes.
var TrimEscapesForTest = trimEscapes

// NextSpanForTest exposes nextSpan.
var NextSpanForTest = nextSpan
