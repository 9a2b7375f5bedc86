package main

import (
	"context"
	"fmt"

	"gitlab.connectwisedev.com/storefront-client/models"
	"gitlab.connectwisedev.com/storefront-client/pkg/validation"
)

// login prompts for credentials, validates them with the login schema and
// authenticates against the backend.
func (a *app) login(ctx context.Context) error {
	form := validation.LoginForm{
		Email:    a.prompt("Email"),
		Password: a.prompt("Password"),
	}
	if errs := validation.Check(form); errs != nil {
		renderFieldErrors(errs)
		return fmt.Errorf("login form is invalid")
	}

	resp, err := a.client.Login(ctx, form.Email, form.Password)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s!\n", resp.User.Name)
	fmt.Printf("Export API_TOKEN=%s to stay logged in for later commands.\n", resp.Token)
	return nil
}

// logout ends the backend session
func (a *app) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out. Unset API_TOKEN if you exported it.")
	return nil
}

// register prompts for account details, validates them with the
// registration schema and creates the account.
func (a *app) register(ctx context.Context) error {
	form := validation.RegisterForm{
		Name:            a.prompt("Name"),
		Email:           a.prompt("Email"),
		Password:        a.prompt("Password"),
		ConfirmPassword: a.prompt("Confirm password"),
		Phone:           a.prompt("Phone"),
	}
	if errs := validation.Check(form); errs != nil {
		renderFieldErrors(errs)
		return fmt.Errorf("registration form is invalid")
	}

	err := a.client.Register(ctx, models.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Phone:    form.Phone,
	})
	if err != nil {
		return err
	}
	fmt.Println("Account created. You can now log in.")
	return nil
}
