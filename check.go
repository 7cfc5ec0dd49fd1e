package main

import (
	"fmt"
	"sort"

	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/validation"
	"github.com/urfave/cli/v2"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Validate a login or signup form without submitting it",
	ArgsUsage: "login|signup",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "id"},
		&cli.StringFlag{Name: "email"},
		&cli.StringFlag{Name: "age"},
		&cli.StringFlag{Name: "username"},
		&cli.StringFlag{Name: "password"},
		&cli.StringFlag{Name: "confirm-password"},
	},
	Action: runCheck,
}

func runCheck(ctx *cli.Context) error {
	var result validation.Result
	switch kind := ctx.Args().First(); kind {
	case "login":
		form := forms.LoginForm{
			Username: ctx.String("username"),
			Password: ctx.String("password"),
		}
		result = form.Validate()
	case "signup":
		form := forms.SignupForm{
			Name:            ctx.String("name"),
			ID:              ctx.String("id"),
			Email:           ctx.String("email"),
			Age:             ctx.String("age"),
			Password:        ctx.String("password"),
			ConfirmPassword: ctx.String("confirm-password"),
		}
		result = form.Validate()
	default:
		return fmt.Errorf("unknown form %q, expected login or signup", kind)
	}

	fields := make([]string, 0, len(result))
	for field := range result {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	for _, field := range fields {
		msg := result.Get(validation.Field(field))
		if msg == "" {
			msg = "ok"
		}
		fmt.Fprintf(ctx.App.Writer, "%-16s %s\n", field, msg)
	}
	if !result.Submittable() {
		return cli.Exit("form is not submittable", 1)
	}
	fmt.Fprintln(ctx.App.Writer, "form is submittable")
	return nil
}
