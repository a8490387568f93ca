package models

type ctxKey string

const PrincipalContextKey ctxKey = "principal"

const AnonymousLogin = "anonymoususer"

// Principal is the actor a request runs on behalf of.
type Principal struct {
	Login string `json:"login"`
}

func Anonymous() Principal {
	return Principal{Login: AnonymousLogin}
}

func (p Principal) IsAnonymous() bool {
	return p.Login == "" || p.Login == AnonymousLogin
}
