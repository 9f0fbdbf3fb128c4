package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/messagely/messagely/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the profile fields and a password and creates an
// account. A successful registration logs the user in immediately; the
// server returns a token with the registration response.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, api.RegisterParams{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.username = username
	fmt.Println("Welcome,", username)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, username, password); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.username = username
	fmt.Println("Logged in as", username)
	return nil
}

// Logout drops the token and the remembered username.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.username = ""
	fmt.Println("Logged out")
	return nil
}
