package workflow

import (
	"context"
	"net/url"
)

// Continue-control labels for the kickoff phases. Cosmetic only.
const (
	controlIdleLabel       = "Continue to Analysis"
	controlUploadingLabel  = "Uploading files..."
	controlGeneratingLabel = "Starting generation..."
)

// reviewLocation builds the redirect target carrying the job identifier.
func reviewLocation(jobID string) string {
	return "/review.html?job_id=" + url.QueryEscape(jobID)
}

// Continue runs the kickoff sequence: staged files → upload collaborator →
// generation collaborator → navigate to the review page. Each step is
// gated on the previous one succeeding.
//
// The busy flag only suppresses a re-trigger while a sequence is in
// flight; it is the cosmetic guard the mockup relied on, not a lock. Every
// failure path re-enables the control, restores its label, and leaves the
// controller idle.
func (c *Controller) Continue(ctx context.Context) error {
	if c.busy {
		return nil
	}

	if c.files.Len() == 0 {
		c.ui.Notify("Please add at least one data file before continuing")
		return nil
	}

	if !c.sess.Authenticated() {
		// Suspend and hand control to the auth surface. Only the auto
		// policy resumes this attempt after a successful sign-in.
		c.resumeAfterAuth = true
		c.ui.ShowAuth()
		return nil
	}

	c.busy = true
	defer func() { c.busy = false }()

	c.ui.SetControl(controlUploadingLabel, false)
	uploadID, err := c.client.Upload(ctx, c.files.Files())
	if err != nil {
		c.failKickoff(ctx, err)
		return nil
	}

	c.ui.SetControl(controlGeneratingLabel, false)
	jobID, err := c.client.Generate(ctx, uploadID)
	if err != nil {
		c.failKickoff(ctx, err)
		return nil
	}

	c.ui.SetControl(controlIdleLabel, true)
	c.ui.Navigate(reviewLocation(jobID))
	return nil
}

// failKickoff resets the control to idle and surfaces the failure.
func (c *Controller) failKickoff(ctx context.Context, err error) {
	c.ui.SetControl(controlIdleLabel, true)
	c.surface(ctx, err)
}
