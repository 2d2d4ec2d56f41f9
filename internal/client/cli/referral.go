package cli

import (
	"context"
)

func (a *App) referralCode(ctx context.Context) {
	_, fabricated := a.ctrl.GenerateCode(ctx)
	if fabricated {
		a.logger.Debug(ctx, "referral code fabricated locally")
	}
}

func (a *App) invite(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter your colleague's email", a.out)
	if err != nil {
		a.logger.Error(ctx, "input error", "error", err)
		return
	}

	if err := a.ctrl.SendInvite(ctx, email); err != nil {
		a.logger.Error(ctx, "invite failed", "error", err)
	}
}
