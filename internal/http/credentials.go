package http

import (
	"encoding/base64"
	"strings"

	"course-api/internal/service"
)

const basicScheme = "basic"

// ParseBasicCredentials interpreta un header Authorization "Basic base64(id:secret)".
// Header ausente o mal formado devuelve ok=false; nunca falla.
func ParseBasicCredentials(header string) (service.Credentials, bool) {
	header = strings.TrimSpace(header)
	scheme, encoded, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, basicScheme) {
		return service.Credentials{}, false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return service.Credentials{}, false
	}

	identifier, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return service.Credentials{}, false
	}
	return service.Credentials{Identifier: identifier, Secret: secret}, true
}
