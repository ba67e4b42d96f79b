package ofxevent

// Exported for tests.
var StripWhitespace = stripWhitespace

func StatusCodeName(code int) string {
	return lookupStatusCode(code).name
}
