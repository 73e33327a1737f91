package cli

import (
	"context"
	"fmt"
)

func (a *App) login(ctx context.Context) {
	userID, err := GetSimpleText(a.reader, "ユーザーID", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	// a failed attempt returns straight to the anonymous state with an
	// inline message
	if err := a.auth.Login(ctx, userID, password); err != nil {
		fmt.Fprintln(a.out, "!", err)
	}
}

func (a *App) signup(ctx context.Context) {
	userID, err := GetSimpleText(a.reader, "ユーザーID", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.auth.Signup(ctx, userID, password); err != nil {
		fmt.Fprintln(a.out, "!", err)
	}
}
