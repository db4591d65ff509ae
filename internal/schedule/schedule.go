package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/errors"
)

// DefaultSchedule runs once a day at 10:00 local time
const DefaultSchedule = "0 10 * * *"

// parser accepts standard 5-field expressions (minute, hour, dom, month, dow)
// and descriptors such as @daily or @every 6h.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Parse validates a cron expression
func Parse(expr string) (cron.Schedule, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, errors.NewConfigError("schedule", expr, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}
	return sched, nil
}

// Next returns the first activation of expr strictly after from
func Next(expr string, from time.Time) (time.Time, error) {
	sched, err := Parse(expr)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// Job is the work triggered on every activation
type Job func(ctx context.Context) error

// Daemon triggers a Job on a cron schedule. An activation that arrives while
// the previous one is still running is skipped.
type Daemon struct {
	expr     string
	schedule cron.Schedule
	job      Job
	logger   common.Logger
	runNow   bool
	location *time.Location
}

// Option configures a Daemon
type Option func(*Daemon)

// WithRunNow runs the job once immediately before waiting for the schedule
func WithRunNow(runNow bool) Option {
	return func(d *Daemon) {
		d.runNow = runNow
	}
}

// WithLocation interprets the schedule in loc instead of the local zone
func WithLocation(loc *time.Location) Option {
	return func(d *Daemon) {
		d.location = loc
	}
}

// NewDaemon creates a Daemon for expr
func NewDaemon(expr string, job Job, logger common.Logger, opts ...Option) (*Daemon, error) {
	sched, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	d := &Daemon{
		expr:     expr,
		schedule: sched,
		job:      job,
		logger:   logger,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Run blocks until ctx is done, then waits for a running job to finish
func (d *Daemon) Run(ctx context.Context) error {
	cl := cronLogger{logger: d.logger}

	c := cron.New(
		cron.WithParser(parser),
		cron.WithLocation(d.location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	var id cron.EntryID
	id = c.Schedule(d.schedule, cron.FuncJob(func() {
		d.fire(ctx)
		d.logNext(c.Entry(id).Next)
	}))

	if d.runNow {
		d.fire(ctx)
	}
	if ctx.Err() != nil {
		return nil
	}

	c.Start()
	d.logger.InfoToUser("Daemon started with schedule %q", d.expr)
	d.logNext(d.schedule.Next(time.Now().In(d.location)))

	<-ctx.Done()

	d.logger.InfoToUser("Stopping daemon, waiting for a running job to finish")
	<-c.Stop().Done()

	return nil
}

func (d *Daemon) fire(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := d.job(ctx); err != nil {
		d.logger.Error("Scheduled run failed: %v", err)
	}
}

func (d *Daemon) logNext(next time.Time) {
	if next.IsZero() {
		return
	}
	d.logger.InfoToUser("Next run at %s", next.Format("2006-01-02 15:04:05 MST"))
}

// cronLogger routes cron's internal logging to a common.Logger
type cronLogger struct {
	logger common.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: %s%s", msg, formatKV(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v%s", msg, err, formatKV(keysAndValues))
}

func formatKV(kv []interface{}) string {
	out := ""
	for i := 0; i+1 < len(kv); i += 2 {
		out += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	return out
}
