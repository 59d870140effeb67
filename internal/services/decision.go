package services

// Decision is the result of an authorization check. Denials carry a
// human-readable reason that handlers surface to the end user; checks never
// report denial through an error.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
