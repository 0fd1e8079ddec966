package qr

import "strings"

// Key derives the artifact key for url: the text after the last "//"
// separator (the whole string when absent), with every character outside
// [A-Za-z0-9_-] replaced by '_'. Separators are matched left to right
// without overlap, so "file:///etc" keeps the third slash and yields "_etc".
//
// Distinct URLs can share a key, e.g. "http://a!b" and "http://a_b".
func Key(url string) string {
	for {
		i := strings.Index(url, "//")
		if i < 0 {
			break
		}
		url = url[i+2:]
	}

	var b strings.Builder
	b.Grow(len(url))
	for _, r := range url {
		if isKeyRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}

// FileName is the name under which both stores keep the artifact for key.
func FileName(key string) string {
	return key + ".png"
}

// ObjectKey is the remote object key for key under prefix.
func ObjectKey(prefix, key string) string {
	return strings.TrimRight(prefix, "/") + "/" + FileName(key)
}
