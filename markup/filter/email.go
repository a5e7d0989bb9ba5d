package filter

import "net/mail"

type emailFilter struct{}

func (emailFilter) Filter(_ *Context, raw string) Result {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return Result{Valid: false}
	}
	return Result{Value: addr.Address, Valid: true}
}
