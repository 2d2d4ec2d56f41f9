package workflow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/velvetresearch/velvet/internal/client/api"
)

// GenerateCode obtains a referral code and displays it. The collaborator is
// tried first; any failure degrades to a locally fabricated code. The
// fallback is non-fatal by design and must never be presented as an error,
// so the only user-visible outcome of this method is a code.
func (c *Controller) GenerateCode(ctx context.Context) (string, bool) {
	code, err := c.client.GenerateReferralCode(ctx)
	if err == nil && code != "" {
		c.ui.ShowReferralCode(code)
		return code, false
	}

	if errors.Is(err, api.ErrUnauthorized) {
		c.handleUnauthorized(ctx)
	}

	code = FabricateReferralCode(c.sess.User.ID)
	c.ui.ShowReferralCode(code)
	return code, true
}

// FabricateReferralCode builds the documented local fallback code:
// "VR-" + the first three characters of the user id (upper-cased, padded
// with 'X') + three random digits. A random fragment stands in when no
// user id is available.
func FabricateReferralCode(userID string) string {
	if userID == "" {
		userID = uuid.NewString()
	}

	prefix := strings.ToUpper(userID)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	for len(prefix) < 3 {
		prefix += "X"
	}

	return fmt.Sprintf("VR-%s%d", prefix, 100+rand.IntN(900))
}

// SendInvite emails a referral invitation. The email shape is validated
// before any network call; the invite control is disabled while the
// request is in flight and restored on every exit path.
func (c *Controller) SendInvite(ctx context.Context, email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		c.ui.Notify("Please enter a valid email address")
		return nil
	}

	c.ui.SetInviteEnabled(false)
	defer c.ui.SetInviteEnabled(true)

	if err := c.client.SendInvite(ctx, email); err != nil {
		c.surface(ctx, err)
		return nil
	}

	c.ui.Notify("Invitation sent to " + email)
	return nil
}
