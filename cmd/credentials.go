package cmd

import "strings"

// SplitCredentials separates embedded userinfo from a connection URL and
// returns the URL with the userinfo removed. The split is at the rightmost
// "@" of the authority, so passwords may themselves contain "@"; inside the
// userinfo the username ends at the first ":". Scheme, path, query and
// fragment pass through untouched. A URL without userinfo comes back
// unchanged with both credential fields empty.
func SplitCredentials(raw string) (string, Credentials) {
	rest := raw
	var prefix string
	if i := strings.Index(rest, "://"); i >= 0 {
		prefix = rest[:i+3]
		rest = rest[i+3:]
	}

	authority := rest
	var suffix string
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		authority = rest[:i]
		suffix = rest[i:]
	}

	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return raw, Credentials{}
	}

	userinfo := authority[:at]
	host := authority[at+1:]

	creds := Credentials{Username: userinfo}
	if c := strings.Index(userinfo, ":"); c >= 0 {
		creds.Username = userinfo[:c]
		creds.Password = userinfo[c+1:]
	}
	return prefix + host + suffix, creds
}
