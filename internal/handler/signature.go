package handler

import (
	"crypto/subtle"
	"strings"
)

// signatureHeader keeps the spelling callers already send.
const signatureHeader = "Signiture"

func getHeader(headers map[string]string, name string) (string, bool) {
	if v, ok := headers[name]; ok {
		return v, true
	}

	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}

	return "", false
}

func isAuthorized(headers map[string]string, secret string) bool {
	sig, ok := getHeader(headers, signatureHeader)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(sig), []byte(secret)) == 1
}
