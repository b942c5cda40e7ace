package service

import (
	"net/url"
	"strings"
)

// ValidateImageURL проверяет, что raw — абсолютный URL, начинающийся с http:// или https://.
// Префикс сравнивается буквально: "HTTP://..." и "http:host" отклоняются как чужой протокол.
func ValidateImageURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, &Error{Kind: KindValidation, Message: MsgImageURLRequired}
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, &Error{Kind: KindValidation, Message: MsgInvalidURL, Err: err}
	}

	// "http:" и "http://" без хоста не являются URL вовсе
	if u.Host == "" && isHTTPScheme(u.Scheme) {
		rest := raw[len(u.Scheme)+1:]
		if rest == "" || strings.HasPrefix(rest, "//") {
			return nil, &Error{Kind: KindValidation, Message: MsgInvalidURL}
		}
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return nil, &Error{Kind: KindValidation, Message: MsgInvalidScheme}
	}

	if u.Host == "" {
		return nil, &Error{Kind: KindValidation, Message: MsgInvalidURL}
	}
	return u, nil
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
