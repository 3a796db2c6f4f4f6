package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/adventbox/daybox/internal/client/api"
	"github.com/adventbox/daybox/internal/client/session"
	"github.com/adventbox/daybox/internal/datex"
)

func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	res, err := a.api.Login(ctx, api.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}

	startDate, err := datex.Parse(res.StartDate)
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}

	sess := session.Session{AccessToken: res.AccessToken, StartDate: startDate}
	if err := session.Save(ctx, a.meta, sess); err != nil {
		fmt.Println("Warning: session not cached:", err)
	}

	a.mode = session.Authenticated{Session: sess}
	a.rebuildGateway()
	fmt.Println("Logged in.")
}

func (a *App) logout(ctx context.Context) {
	if err := session.Clear(ctx, a.meta); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.mode = session.Guest{}
	a.rebuildGateway()
	fmt.Println("Logged out, running in guest mode.")
}

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	startDate, err := GetSimpleText(a.reader, "Calendar start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	err = a.api.Register(ctx, api.RegisterRequest{
		Username:  username,
		Password:  string(password),
		StartDate: startDate,
	})
	if err != nil {
		fmt.Println("Registration failed:", err)
		return
	}
	fmt.Println("Registered. You can now log in.")
}
