package cli

import (
	"context"
	"fmt"
)

// Users lists everyone on the service.
func (a *App) Users(ctx context.Context) error {
	list, err := a.api.Users(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, u := range list {
		fmt.Printf("%s (%s %s)\n", u.Username, u.FirstName, u.LastName)
	}
	return nil
}

// Me shows the caller's own profile.
func (a *App) Me(ctx context.Context) error {
	u, err := a.api.User(ctx, a.username)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("%s (%s %s)\n", u.Username, u.FirstName, u.LastName)
	fmt.Println("Phone:", u.Phone)
	fmt.Println("Joined:", u.JoinAt.Format("2006-01-02 15:04"))
	if u.LastLoginAt != nil {
		fmt.Println("Last login:", u.LastLoginAt.Format("2006-01-02 15:04"))
	}
	return nil
}
