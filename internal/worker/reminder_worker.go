package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/dhruv0307t-del/ERP-Farm/internal/infra"
	"github.com/dhruv0307t-del/ERP-Farm/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// ReminderWorker runs a daily scan for vaccination reminders falling due
// today. Each hit is logged; when SMTP is configured the owning farm's
// admin users are notified, with sends guarded by a circuit breaker.
type ReminderWorker struct {
	reminders repository.ReminderRepository
	users     repository.UserRepository
	mailer    *infra.Mailer
	breaker   *infra.CircuitBreaker
	cron      *cron.Cron
	spec      string
}

func NewReminderWorker(
	reminders repository.ReminderRepository,
	users repository.UserRepository,
	mailer *infra.Mailer,
	spec string,
) *ReminderWorker {
	return &ReminderWorker{
		reminders: reminders,
		users:     users,
		mailer:    mailer,
		breaker:   infra.NewCircuitBreaker(5, 2, 60*time.Second),
		cron:      cron.New(),
		spec:      spec,
	}
}

// Start registers the cron schedule and begins running. Returns an error
// only when the cron expression is invalid.
func (w *ReminderWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() { w.Scan(ctx) })
	if err != nil {
		return fmt.Errorf("reminder worker: bad cron spec %q: %w", w.spec, err)
	}
	w.cron.Start()
	log.Info().Str("spec", w.spec).Msg("reminder worker scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running scan to finish.
func (w *ReminderWorker) Stop() {
	<-w.cron.Stop().Done()
}

// Scan processes the reminders due on the current day. Exposed so the seed
// tooling and tests can trigger a pass directly.
func (w *ReminderWorker) Scan(ctx context.Context) {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	due, err := w.reminders.ListDueOn(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("reminder scan failed")
		return
	}
	if len(due) == 0 {
		log.Debug().Msg("no vaccination reminders due today")
		return
	}

	for _, rem := range due {
		tag := "?"
		var farmID *uint
		if rem.Animal != nil {
			tag = rem.Animal.TagNo
			farmID = rem.Animal.FarmID
		}
		notes := ""
		if rem.Notes != nil {
			notes = *rem.Notes
		}
		log.Info().
			Uint("reminder_id", rem.ID).
			Str("tag_no", tag).
			Str("notes", notes).
			Msg("vaccination reminder due")

		if w.mailer == nil || !w.mailer.Enabled() || farmID == nil {
			continue
		}
		w.notify(ctx, *farmID, tag, notes, day)
	}
}

func (w *ReminderWorker) notify(ctx context.Context, farmID uint, tag, notes string, day time.Time) {
	admins, err := w.users.ListFarmAdmins(ctx, farmID)
	if err != nil {
		log.Error().Err(err).Uint("farm_id", farmID).Msg("could not load reminder recipients")
		return
	}
	if len(admins) == 0 {
		return
	}

	to := make([]string, 0, len(admins))
	for _, u := range admins {
		to = append(to, *u.Email)
	}

	subject := fmt.Sprintf("Vaccination due today for animal %s", tag)
	body := fmt.Sprintf("Animal %s has a vaccination reminder for %s.", tag, day.Format("2006-01-02"))
	if notes != "" {
		body += "\n\nNotes: " + notes
	}

	err = w.breaker.Execute(func() error {
		return w.mailer.Send(to, subject, body)
	})
	if err != nil {
		log.Error().Err(err).
			Str("breaker", w.breaker.State()).
			Str("tag_no", tag).
			Msg("reminder mail failed")
	}
}
