package cli

import (
	"context"

	"github.com/velvetresearch/velvet/internal/common"
)

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.ctrl.SubmitLogin(ctx, email, password); err != nil {
		a.logger.Error(ctx, "login failed", "error", err)
	}
}

func (a *App) register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(confirm)

	if err := a.ctrl.SubmitSignup(ctx, email, password, confirm); err != nil {
		a.logger.Error(ctx, "registration failed", "error", err)
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.ctrl.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return
	}
	a.Notify("Signed out")
}
